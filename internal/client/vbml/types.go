package vbml

type Justify string

const (
	JustifyLeft    Justify = "left"
	JustifyCenter  Justify = "center"
	JustifyRight   Justify = "right"
	JustifyJustify Justify = "justified"
)

type Align string

const (
	AlignTop     Align = "top"
	AlignCenter  Align = "center"
	AlignBottom  Align = "bottom"
	AlignJustify Align = "justified"
)

type Style struct {
	Justify Justify `json:"justify"`
	Align   Align   `json:"align"`
}

type Component struct {
	Style    Style  `json:"style"`
	Template string `json:"template"`
}

type ComposeRequest struct {
	Components []Component `json:"components"`
}

// NewComposeRequest is a single component centered both ways.
func NewComposeRequest(text string) ComposeRequest {
	return ComposeRequest{
		Components: []Component{
			{
				Style:    Style{Justify: JustifyCenter, Align: AlignCenter},
				Template: text,
			},
		},
	}
}
