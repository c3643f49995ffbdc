// Package charts renders the dashboard's overview graphics as server-side
// ECharts markup.
package charts

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/feastly/admin-console/internal/model"
)

const defaultChartHeight = "360px"

// Renderer turns overview aggregates into embeddable chart HTML.
type Renderer struct {
	theme string
	cache RenderCache
}

// Option customizes renderer behavior.
type Option func(*Renderer)

// WithTheme overrides the default chart theme.
func WithTheme(theme string) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithCache injects a render cache.
func WithCache(cache RenderCache) Option {
	return func(r *Renderer) {
		r.cache = cache
	}
}

// NewRenderer builds a renderer. Without options it uses the Westeros theme
// and a five minute render cache.
func NewRenderer(options ...Option) *Renderer {
	r := &Renderer{
		theme: types.ThemeWesteros,
		cache: NewTTLCache(5 * time.Minute),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// OrdersByDay renders the order volume time series as a smoothed line chart.
func (r *Renderer) OrdersByDay(series []model.DailyMetric) (string, error) {
	return r.cached(fmt.Sprintf("orders_by_day:%s", seriesHash(series)), func() (string, error) {
		line := charts.NewLine()
		line.SetGlobalOptions(r.globalOptions("Orders", "Orders placed per day")...)
		line.SetXAxis(dayLabels(series))
		line.AddSeries("Orders", toLineData(series))
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
		return renderChart(line)
	})
}

// RevenueByDay renders the revenue time series as a bar chart.
func (r *Renderer) RevenueByDay(series []model.DailyMetric) (string, error) {
	return r.cached(fmt.Sprintf("revenue_by_day:%s", seriesHash(series)), func() (string, error) {
		bar := charts.NewBar()
		bar.SetGlobalOptions(r.globalOptions("Revenue", "Gross revenue per day")...)
		bar.SetXAxis(dayLabels(series))
		bar.AddSeries("Revenue", toBarData(series))
		return renderChart(bar)
	})
}

// OrdersByStatus renders the current order mix as a pie chart. Labels come
// from the badge registry so chart legends match the tables.
func (r *Renderer) OrdersByStatus(byStatus map[string]int, label func(string) string) (string, error) {
	if label == nil {
		label = func(s string) string { return s }
	}
	return r.cached(fmt.Sprintf("orders_by_status:%s", statusHash(byStatus)), func() (string, error) {
		pie := charts.NewPie()
		pie.SetGlobalOptions(r.globalOptions("Order Status", "")...)
		data := make([]opts.PieData, 0, len(byStatus))
		for status, count := range byStatus {
			data = append(data, opts.PieData{Name: label(status), Value: count})
		}
		pie.AddSeries("Orders", data)
		return renderChart(pie)
	})
}

func (r *Renderer) cached(key string, render func() (string, error)) (string, error) {
	if r.cache == nil {
		return render()
	}
	return r.cache.GetOrRender(key, render)
}

func (r *Renderer) globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  r.theme,
			Width:  "100%",
			Height: defaultChartHeight,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func dayLabels(series []model.DailyMetric) []string {
	labels := make([]string, len(series))
	for i, point := range series {
		labels[i] = point.Day.Format("Jan 02")
	}
	return labels
}

func toLineData(series []model.DailyMetric) []opts.LineData {
	data := make([]opts.LineData, len(series))
	for i, point := range series {
		data[i] = opts.LineData{Value: point.Value}
	}
	return data
}

func toBarData(series []model.DailyMetric) []opts.BarData {
	data := make([]opts.BarData, len(series))
	for i, point := range series {
		data[i] = opts.BarData{Value: point.Value}
	}
	return data
}

func seriesHash(series []model.DailyMetric) string {
	var buf bytes.Buffer
	for _, point := range series {
		fmt.Fprintf(&buf, "%d:%g;", point.Day.Unix(), point.Value)
	}
	return buf.String()
}

func statusHash(byStatus map[string]int) string {
	keys := make([]string, 0, len(byStatus))
	for status := range byStatus {
		keys = append(keys, status)
	}
	sort.Strings(keys)
	var buf bytes.Buffer
	for _, status := range keys {
		fmt.Fprintf(&buf, "%s:%d;", status, byStatus[status])
	}
	return buf.String()
}
