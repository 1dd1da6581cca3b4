package render

import "github.com/Raj6773/Resume/resume/model"

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpRect OpKind = iota
	OpText
	OpLine
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	case OpLine:
		return "line"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one drawing call. X/Y is the text baseline, the line start, or the
// lower-left corner of a rect or image, measured from the bottom of the page.
type Op struct {
	Kind  OpKind
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	Text  string
	Font  Font
	Color RGB
}

// Plan is the ordered list of drawing calls for one résumé.
type Plan struct {
	Ops []Op
	// EndY is the cursor after the last education row.
	EndY float64
}

// Texts returns every drawn string in drawing order.
func (p Plan) Texts() []string {
	out := make([]string, 0, len(p.Ops))
	for _, op := range p.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Overflows reports whether the content runs past the bottom margin.
func (p Plan) Overflows() bool {
	return p.EndY+rowStep < BottomMargin
}

type layout struct {
	ops []Op
}

func (l *layout) rect(x, y, w, h float64, color RGB) {
	l.ops = append(l.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: color})
}

func (l *layout) text(x, y float64, font Font, color RGB, s string) {
	l.ops = append(l.ops, Op{Kind: OpText, X: x, Y: y, Text: s, Font: font, Color: color})
}

func (l *layout) line(x1, y1, x2, y2 float64) {
	l.ops = append(l.ops, Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: Black})
}

func (l *layout) image(x, y, w, h float64) {
	l.ops = append(l.ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h})
}

// section draws a bold title with a rule under it and returns the cursor for
// the first line of the section.
func (l *layout) section(title string, y float64) float64 {
	l.text(marginLeft, y, SectionFont, Black, title)
	l.line(marginLeft, y-ruleOffset, marginRight, y-ruleOffset)
	return y - titleStep
}

func (l *layout) bullets(items []string, y float64) float64 {
	for _, item := range items {
		l.text(bulletX, y, BodyFont, Black, bullet+item)
		y -= bulletStep
	}
	return y
}

// Layout computes the drawing sequence for c. The candidate is assumed to be
// validated; empty lists simply produce empty sections.
func Layout(c model.Candidate, withImage bool) Plan {
	l := &layout{}

	l.rect(0, headerTop, headerWidth, headerHeight, HeaderColor)
	l.text(headerX, headerLines[0], HeaderFont, White, "Name: "+c.Name)
	l.text(headerX, headerLines[1], HeaderFont, White, "Email: "+c.Email)
	l.text(headerX, headerLines[2], HeaderFont, White, "Phone: "+c.Phone)
	if withImage {
		l.image(imageX, imageY, imageSize, imageSize)
	}

	y := l.section("Skills", firstSectionY)
	y = l.bullets(c.SkillList(), y)

	y = l.section("Hobbies", y-sectionGap)
	y = l.bullets(c.HobbyList(), y)

	y = l.section("Experience", y-sectionGap)
	for _, exp := range c.Experience {
		l.text(marginLeft, y, BoldFont, Black, exp.Title)
		l.text(marginLeft, y-jobMetaOffset, BodyFont, Black, exp.Company+" | "+exp.Duration)
		y -= jobStep
	}

	y = l.section("Education", y-sectionGap)
	y -= tableHeadStep - titleStep
	for i, head := range [4]string{"Degree", "Institution", "Year", "Percentage"} {
		l.text(educationColumns[i], y, BoldFont, Black, head)
	}
	l.line(marginLeft, y-ruleOffset, marginRight, y-ruleOffset)
	y -= rowStep
	for _, edu := range c.Education {
		for i, cell := range [4]string{edu.Degree, edu.Institution, edu.Year, edu.Percentage} {
			l.text(educationColumns[i], y, BodyFont, Black, cell)
		}
		y -= rowStep
	}

	return Plan{Ops: l.ops, EndY: y}
}
