package render

// RGB is a fill, stroke or text colour.
type RGB struct {
	R, G, B int
}

// Font selects one of the PDF core fonts.
type Font struct {
	Family string
	Style  string // "" regular, "B" bold
	Size   float64
}

// Page geometry in points. Layout coordinates grow upwards from the bottom
// edge; the painter flips them for fpdf.
const (
	PageSize   = "Letter"
	PageWidth  = 612.0
	PageHeight = 792.0
)

var (
	HeaderColor = RGB{0x2A, 0x8B, 0xDA}
	White       = RGB{255, 255, 255}
	Black       = RGB{0, 0, 0}
)

var (
	HeaderFont  = Font{Family: "Helvetica", Style: "B", Size: 16}
	SectionFont = Font{Family: "Helvetica", Style: "B", Size: 14}
	BodyFont    = Font{Family: "Helvetica", Size: 12}
	BoldFont    = Font{Family: "Helvetica", Style: "B", Size: 12}
)

const (
	headerX      = 50.0
	headerTop    = 700.0
	headerWidth  = 600.0
	headerHeight = 100.0

	imageX    = 450.0
	imageY    = 710.0
	imageSize = 80.0

	marginLeft  = 50.0
	marginRight = 550.0
	bulletX     = 60.0
	ruleOffset  = 5.0

	firstSectionY = 650.0
	sectionGap    = 10.0
	titleStep     = 20.0
	bulletStep    = 20.0
	jobStep       = 40.0
	jobMetaOffset = 15.0
	tableHeadStep = 30.0
	rowStep       = 20.0

	// BottomMargin is where the page is considered full. Content below it is
	// still drawn and clipped by the page edge.
	BottomMargin = 36.0

	bullet = "• "
)

// educationColumns are the x offsets of Degree, Institution, Year and Percentage.
var educationColumns = [4]float64{50, 200, 350, 450}

var headerLines = [3]float64{750, 730, 710}
