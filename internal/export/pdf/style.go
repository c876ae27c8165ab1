package pdf

// Style selects the font used for a line of text
type Style int

const (
	StyleName Style = iota
	StyleContact
	StyleHeading
	StyleTitle
	StyleMeta
	StyleBody
	StyleFooter
)

// Font describes how a Style is drawn. Sizes are points, leading is the
// row height in millimetres.
type Font struct {
	Family   string
	Emphasis string // "", "B", "I" or "BI" as understood by fpdf
	Size     float64
	Leading  float64
	Color    [3]int
	Class    string
}

var fonts = map[Style]Font{
	StyleName:    {Family: "Helvetica", Emphasis: "B", Size: 20, Leading: 10, Color: [3]int{20, 20, 20}, Class: "name"},
	StyleContact: {Family: "Helvetica", Size: 9, Leading: 4.8, Color: [3]int{90, 90, 90}, Class: "contact"},
	StyleHeading: {Family: "Helvetica", Emphasis: "B", Size: 12, Leading: 7, Color: [3]int{30, 60, 110}, Class: "heading"},
	StyleTitle:   {Family: "Helvetica", Emphasis: "B", Size: 10.5, Leading: 5.5, Color: [3]int{20, 20, 20}, Class: "title"},
	StyleMeta:    {Family: "Helvetica", Emphasis: "I", Size: 9.5, Leading: 5, Color: [3]int{90, 90, 90}, Class: "meta"},
	StyleBody:    {Family: "Helvetica", Size: 10, Leading: 5, Color: [3]int{40, 40, 40}, Class: "body"},
	StyleFooter:  {Family: "Helvetica", Size: 8, Leading: 4, Color: [3]int{130, 130, 130}, Class: "footer"},
}

// Font returns the font of s
func (s Style) Font() Font {
	return fonts[s]
}

// baseline is the distance from the top of a row to the text baseline
func (s Style) baseline() float64 {
	return s.Font().Leading * 0.75
}
