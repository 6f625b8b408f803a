package layout

// Orientaciones de canvas soportadas. El tamaño físico se deriva SIEMPRE
// de la orientación; ancho/alto del cliente nunca se usan tal cual.
const (
	OrientacionH = "H"
	OrientacionV = "V"

	CanvasAnchoH = 1011
	CanvasAltoH  = 639
)

const (
	ShapeRounded = "rounded"
	ShapeCircle  = "circle"

	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	PesoNormal  = "400"
	PesoNegrita = "700"
)

type Canvas struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
}

// CanvasPorOrientacion devuelve el canvas fijo para H o V.
func CanvasPorOrientacion(orientation string) Canvas {
	if orientation == OrientacionV {
		return Canvas{Width: CanvasAltoH, Height: CanvasAnchoH, Orientation: OrientacionV}
	}
	return Canvas{Width: CanvasAnchoH, Height: CanvasAltoH, Orientation: OrientacionH}
}

// Item agrupa los atributos de estilo de un campo. El campo photo usa
// W/H/Shape/Radius/Border*; los campos de texto usan FontSize/FontWeight/
// Color/Align. X, Y y Visible aplican a todos.
type Item struct {
	X int `json:"x"`
	Y int `json:"y"`

	// foto
	W           int    `json:"w,omitempty"`
	H           int    `json:"h,omitempty"`
	Shape       string `json:"shape,omitempty"`
	Radius      int    `json:"radius,omitempty"`
	Border      bool   `json:"border,omitempty"`
	BorderWidth int    `json:"border_width,omitempty"`
	BorderColor string `json:"border_color,omitempty"`

	// texto
	FontSize   int    `json:"font_size,omitempty"`
	FontWeight string `json:"font_weight,omitempty"`
	Color      string `json:"color,omitempty"`
	Align      string `json:"align,omitempty"`

	Visible bool `json:"visible"`
}

type Layout struct {
	Canvas        Canvas         `json:"canvas"`
	EnabledFields []Campo        `json:"enabled_fields"`
	Items         map[Campo]Item `json:"items"`
}

// Habilitado reporta si el campo está en enabled_fields.
func (l Layout) Habilitado(campo Campo) bool {
	for _, f := range l.EnabledFields {
		if f == campo {
			return true
		}
	}
	return false
}

// DefaultLayout devuelve una copia nueva del diseño canónico. El caller
// puede mutarla sin afectar llamadas posteriores.
func DefaultLayout() Layout {
	return Layout{
		Canvas: CanvasPorOrientacion(OrientacionH),
		EnabledFields: []Campo{
			CampoPhoto, CampoNombres, CampoApellidos, CampoCodigoAlumno,
			CampoGrado, CampoTelefono, CampoEstablecimiento,
		},
		Items: map[Campo]Item{
			CampoPhoto: {
				X: 20, Y: 40, W: 250, H: 350,
				Shape: ShapeRounded, Radius: 20,
				Border: true, BorderWidth: 4, BorderColor: "#ffffff",
				Visible: true,
			},
			CampoNombres:          {X: 300, Y: 120, FontSize: 45, FontWeight: PesoNegrita, Color: "#090909", Align: AlignLeft, Visible: true},
			CampoApellidos:        {X: 300, Y: 180, FontSize: 50, FontWeight: PesoNormal, Color: "#111111", Align: AlignLeft, Visible: true},
			CampoCodigoAlumno:     {X: 300, Y: 235, FontSize: 22, FontWeight: PesoNegrita, Color: "#111111", Align: AlignLeft, Visible: true},
			CampoGrado:            {X: 350, Y: 260, FontSize: 25, FontWeight: PesoNormal, Color: "#090909", Align: AlignLeft, Visible: true},
			CampoGradoDescripcion: {X: 350, Y: 290, FontSize: 25, FontWeight: PesoNormal, Color: "#0f0f0f", Align: AlignLeft, Visible: true},
			CampoSitioWeb:         {X: 580, Y: 430, FontSize: 28, FontWeight: PesoNormal, Color: "#275393", Align: AlignLeft, Visible: true},
			CampoTelefono:         {X: 520, Y: 500, FontSize: 35, FontWeight: PesoNegrita, Color: "#030303", Align: AlignLeft, Visible: true},
			CampoCUI:              {X: 300, Y: 330, FontSize: 20, FontWeight: PesoNormal, Color: "#111111", Align: AlignLeft, Visible: false},
			CampoEstablecimiento:  {X: 300, Y: 360, FontSize: 20, FontWeight: PesoNormal, Color: "#111111", Align: AlignLeft, Visible: true},
		},
	}
}
