package data

// PlotOptions controls how a dataset is drawn by plotting front ends.
type PlotOptions struct {
	Log bool
	// OrdersOfMagnitude limits the range shown on a log scale.
	OrdersOfMagnitude float64
	Colormap          string
	ShowColorbar      bool
	// CutMin and CutMax select a fraction of the intensity range.
	CutMin float64
	CutMax float64
	// XLimitMultiplier and YLimitMultiplier scale the axis limits, e.g. to
	// convert units.
	XLimitMultiplier float64
	YLimitMultiplier float64
}

// DefaultPlotOptions returns the options every dataset starts with.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		OrdersOfMagnitude: 300,
		Colormap:          "jet",
		ShowColorbar:      true,
		CutMin:            0,
		CutMax:            1,
		XLimitMultiplier:  1,
		YLimitMultiplier:  1,
	}
}

// PlotOption changes one plot option.
type PlotOption func(*PlotOptions)

func Log(on bool) PlotOption {
	return func(o *PlotOptions) { o.Log = on }
}

func OrdersOfMagnitude(n float64) PlotOption {
	return func(o *PlotOptions) { o.OrdersOfMagnitude = n }
}

func Colormap(name string) PlotOption {
	return func(o *PlotOptions) { o.Colormap = name }
}

func ShowColorbar(on bool) PlotOption {
	return func(o *PlotOptions) { o.ShowColorbar = on }
}

func CutMin(f float64) PlotOption {
	return func(o *PlotOptions) { o.CutMin = f }
}

func CutMax(f float64) PlotOption {
	return func(o *PlotOptions) { o.CutMax = f }
}

func XLimitMultiplier(f float64) PlotOption {
	return func(o *PlotOptions) { o.XLimitMultiplier = f }
}

func YLimitMultiplier(f float64) PlotOption {
	return func(o *PlotOptions) { o.YLimitMultiplier = f }
}
