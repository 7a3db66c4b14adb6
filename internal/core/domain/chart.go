package domain

// BarChart describes a ranked bar chart independent of the rendering backend.
type BarChart struct {
	Title  string
	YLabel string
	Labels []string
	Values []float64
}
