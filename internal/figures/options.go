package figures

import "github.com/thenoetrevino/winedash/internal/models"

// The types below are the subset of the ECharts option schema the
// dashboard uses. Field names follow ECharts so they marshal directly.

// Title is a chart title
type Title struct {
	Text string `json:"text"`
	Left string `json:"left,omitempty"`
}

// Tooltip configures hover details
type Tooltip struct {
	Trigger   string `json:"trigger,omitempty"`
	Formatter string `json:"formatter,omitempty"`
}

// Legend lists series names
type Legend struct {
	Data []string `json:"data"`
	Top  int      `json:"top,omitempty"`
}

// ItemStyle colors a series or node
type ItemStyle struct {
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// LineStyle styles a line or reference line
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Type  string  `json:"type,omitempty"`
}

// Label configures text drawn on a node
type Label struct {
	Show      bool   `json:"show"`
	Formatter string `json:"formatter,omitempty"`
	Position  string `json:"position,omitempty"`
}

// Axis is a cartesian or 3D axis
type Axis struct {
	Type string   `json:"type"`
	Name string   `json:"name,omitempty"`
	Data []string `json:"data,omitempty"`
}

// ============================================================================
// TREEMAP
// ============================================================================

// TreemapNode is one rectangle. Leaves carry a value; parents carry children.
type TreemapNode struct {
	Name      string        `json:"name"`
	Value     models.Stat   `json:"value,omitempty"`
	ItemStyle *ItemStyle    `json:"itemStyle,omitempty"`
	Label     *Label        `json:"label,omitempty"`
	Children  []TreemapNode `json:"children,omitempty"`
}

// TreemapSeries is a treemap series
type TreemapSeries struct {
	Type       string        `json:"type"`
	Name       string        `json:"name"`
	Roam       bool          `json:"roam"`
	NodeClick  bool          `json:"nodeClick"`
	UpperLabel Label         `json:"upperLabel"`
	Label      Label         `json:"label"`
	Data       []TreemapNode `json:"data"`
}

// TreemapOption is a complete treemap chart
type TreemapOption struct {
	Title   Title           `json:"title"`
	Tooltip Tooltip         `json:"tooltip"`
	Series  []TreemapSeries `json:"series"`
}

// ============================================================================
// LINE
// ============================================================================

// MarkLineData is one reference line position
type MarkLineData struct {
	YAxis float64 `json:"yAxis"`
}

// MarkLine draws reference lines on a series
type MarkLine struct {
	Silent    bool           `json:"silent"`
	Symbol    string         `json:"symbol"`
	LineStyle LineStyle      `json:"lineStyle"`
	Data      []MarkLineData `json:"data"`
}

// LineSeries is one line of the correlation chart
type LineSeries struct {
	Type       string        `json:"type"`
	Name       string        `json:"name"`
	Smooth     bool          `json:"smooth"`
	Symbol     string        `json:"symbol"`
	SymbolSize int           `json:"symbolSize"`
	ShowSymbol bool          `json:"showSymbol"`
	ItemStyle  ItemStyle     `json:"itemStyle"`
	LineStyle  LineStyle     `json:"lineStyle"`
	Data       []models.Stat `json:"data"`
	MarkLine   *MarkLine     `json:"markLine,omitempty"`
}

// LineOption is a complete line chart
type LineOption struct {
	Title   Title        `json:"title"`
	Tooltip Tooltip      `json:"tooltip"`
	Legend  Legend       `json:"legend"`
	XAxis   Axis         `json:"xAxis"`
	YAxis   Axis         `json:"yAxis"`
	Series  []LineSeries `json:"series"`
}

// ============================================================================
// 3D SCATTER
// ============================================================================

// Scatter3DSeries is one wine type's points, each [x, y, z]
type Scatter3DSeries struct {
	Type       string       `json:"type"`
	Name       string       `json:"name"`
	SymbolSize int          `json:"symbolSize"`
	ItemStyle  ItemStyle    `json:"itemStyle"`
	Data       [][3]float64 `json:"data"`
}

// Scatter3DOption is a complete echarts-gl 3D scatter chart
type Scatter3DOption struct {
	Title   Title             `json:"title"`
	Tooltip Tooltip           `json:"tooltip"`
	Legend  Legend            `json:"legend"`
	Grid3D  struct{}          `json:"grid3D"`
	XAxis3D Axis              `json:"xAxis3D"`
	YAxis3D Axis              `json:"yAxis3D"`
	ZAxis3D Axis              `json:"zAxis3D"`
	Series  []Scatter3DSeries `json:"series"`
}
