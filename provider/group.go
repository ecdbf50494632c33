package provider

import (
	"sort"

	"github.com/SuryanshT01/projectSynapse/model"
)

// groupWords assembles word-level OCR output into synthetic lines and blocks
// using the engine's (block, line) grouping hints. Each word becomes a span
// with placeholder typography; bounding boxes are the union of contained
// word boxes, scaled from raster pixels back to page units.
func (p *Provider) groupWords(words []Word, pageIndex int, pageWidth, pageHeight float64) []model.TextBlock {
	if len(words) == 0 {
		return nil
	}

	scale := p.config.RenderDPI / 72.0
	if scale <= 0 {
		scale = 1
	}

	type lineKey struct{ block, line int }

	lineWords := make(map[lineKey][]Word)
	for _, w := range words {
		if w.Text == "" {
			continue
		}
		k := lineKey{w.Block, w.Line}
		lineWords[k] = append(lineWords[k], w)
	}

	// Assemble lines in (block, line) order
	keys := make([]lineKey, 0, len(lineWords))
	for k := range lineWords {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].block != keys[j].block {
			return keys[i].block < keys[j].block
		}
		return keys[i].line < keys[j].line
	})

	blockLines := make(map[int][]model.Line)
	var blockOrder []int
	for _, k := range keys {
		ws := lineWords[k]
		sort.Slice(ws, func(i, j int) bool { return ws[i].BBox.X0 < ws[j].BBox.X0 })

		line := model.Line{}
		for i, w := range ws {
			span := model.Span{
				Text:     w.Text,
				FontSize: p.config.OCRFontSize,
				FontName: p.config.OCRFontName,
				BBox:     scaleBox(w.BBox, scale),
			}
			if i > 0 {
				span.Text = " " + span.Text
			}
			line.Spans = append(line.Spans, span)
			if i == 0 {
				line.BBox = span.BBox
			} else {
				line.BBox = line.BBox.Union(span.BBox)
			}
		}

		if _, seen := blockLines[k.block]; !seen {
			blockOrder = append(blockOrder, k.block)
		}
		blockLines[k.block] = append(blockLines[k.block], line)
	}

	var blocks []model.TextBlock
	for _, bi := range blockOrder {
		lines := blockLines[bi]
		block := model.TextBlock{
			PageIndex:  pageIndex,
			Lines:      lines,
			Origin:     model.OriginOCR,
			PageWidth:  pageWidth,
			PageHeight: pageHeight,
			BBox:       lines[0].BBox,
		}
		for _, l := range lines[1:] {
			block.BBox = block.BBox.Union(l.BBox)
		}
		blocks = append(blocks, block)
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].BBox.Y0 < blocks[j].BBox.Y0
	})
	return blocks
}

func scaleBox(b model.BBox, scale float64) model.BBox {
	return model.BBox{
		X0: b.X0 / scale,
		Y0: b.Y0 / scale,
		X1: b.X1 / scale,
		Y1: b.Y1 / scale,
	}
}
