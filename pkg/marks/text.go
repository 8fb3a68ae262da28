package marks

import "github.com/justyntemme/audioui/pkg/core"

// TextMark is one positioned label.
type TextMark struct {
	Position core.Normal
	Text     string
}

// TextGroup is a set of positioned labels, the shape the mark renderers
// consume.
type TextGroup struct {
	marks []TextMark
}

// FromTextMarks wraps a list of labels into a TextGroup.
func FromTextMarks(marks []TextMark) TextGroup {
	return TextGroup{marks: marks}
}

// TextCenter returns a TextGroup with a single label at 0.5.
func TextCenter(text string) TextGroup {
	return TextGroup{marks: []TextMark{
		{Position: core.NormalCenter(), Text: text},
	}}
}

// TextMinMax returns a TextGroup with labels at 0 and 1.
func TextMinMax(minText, maxText string) TextGroup {
	return TextGroup{marks: []TextMark{
		{Position: core.NormalMin(), Text: minText},
		{Position: core.NormalMax(), Text: maxText},
	}}
}

// TextMinMaxAndCenter returns a TextGroup with labels at 0, 0.5 and 1.
func TextMinMaxAndCenter(minText, centerText, maxText string) TextGroup {
	return TextGroup{marks: []TextMark{
		{Position: core.NormalMin(), Text: minText},
		{Position: core.NormalCenter(), Text: centerText},
		{Position: core.NormalMax(), Text: maxText},
	}}
}

// TextSubdivided spreads labels at (i+1)/(len+1), leaving the endpoints
// free.
func TextSubdivided(texts []string) TextGroup {
	return textSubdivide(texts, nil, nil)
}

// TextSubdividedWithEnds is TextSubdivided plus labels at 0 and 1.
func TextSubdividedWithEnds(texts []string, minText, maxText string) TextGroup {
	return textSubdivide(texts, &minText, &maxText)
}

func textSubdivide(texts []string, minText, maxText *string) TextGroup {
	marks := make([]TextMark, 0, len(texts)+2)

	span := 1.0 / float32(len(texts)+1)

	for i, text := range texts {
		marks = append(marks, TextMark{
			Position: core.NewNormal(float32(i)*span + span),
			Text:     text,
		})
	}

	if minText != nil {
		marks = append(marks, TextMark{Position: core.NormalMin(), Text: *minText})
	}
	if maxText != nil {
		marks = append(marks, TextMark{Position: core.NormalMax(), Text: *maxText})
	}

	return TextGroup{marks: marks}
}

// TextEvenlySpaced spreads labels at i/(len-1), the first at 0 and the
// last at 1.
func TextEvenlySpaced(texts ...string) TextGroup {
	marks := make([]TextMark, 0, len(texts))

	if len(texts) == 1 {
		marks = append(marks, TextMark{Position: core.NormalMin(), Text: texts[0]})
	} else if len(texts) > 1 {
		span := 1.0 / float32(len(texts)-1)
		for i, text := range texts[:len(texts)-1] {
			marks = append(marks, TextMark{
				Position: core.NewNormal(float32(i) * span),
				Text:     text,
			})
		}
		marks = append(marks, TextMark{
			Position: core.NormalMax(),
			Text:     texts[len(texts)-1],
		})
	}

	return TextGroup{marks: marks}
}

// Len returns the number of labels.
func (g TextGroup) Len() int {
	return len(g.marks)
}

// Marks returns the labels in construction order.
func (g TextGroup) Marks() []TextMark {
	return g.marks
}
