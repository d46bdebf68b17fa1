package internal

// Config carries every enhancement parameter. It is populated once from the
// command line (and .env) and passed down through the pipeline unchanged;
// there is no other configuration state.
type Config struct {
	Input          string
	Output         string
	BlurRadius     float64
	BandHeight     int
	IconSize       int
	Spacing        int
	FontSize       float64
	Padding        int
	VerticalOffset int
	TimeText       string
	IconDir        string
	FontPath       string
	PoolSize       int
}
