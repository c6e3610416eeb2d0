package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"inverter"
	"inverter/app"
	"inverter/maths"
	"inverter/render"
	"inverter/types"
	"inverter/utils"

	gioapp "gioui.org/app"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
)

func main() {
	def := types.DefaultParams()
	var (
		period     = flag.Float64("period", def.Period, "参考周期 T")
		vdc        = flag.Float64("vdc", def.DCAmplitude, "母线电压 Vdc")
		duty       = flag.Float64("duty", def.DutyCycle, "占空比 [0,1]")
		shape      = flag.String("shape", def.Shape.String(), "计数器波形: sawtooth | triangle")
		invert     = flag.Bool("invert", def.InvertCounter2, "计数器2反向")
		offset     = flag.Float64("offset", def.Counter2Offset, "计数器2偏移(周期比例) [0,1]")
		comparator = flag.String("comparator", def.Comparator.String(), "桥臂2比较方式: complement | direct")
		samples    = flag.Int("samples", types.DefaultSamples, "[-T,2T] 上的采样点数")
		pngOut     = flag.String("png", "", "输出 PNG 曲线图")
		htmlOut    = flag.String("html", "", "输出 HTML 曲线页")
		csvOut     = flag.String("csv", "", "输出 CSV 波形表")
		jsonOut    = flag.String("json", "", "输出 JSON 波形记录")
		serve      = flag.String("serve", "", "网页服务地址, 如 :8080")
		gui        = flag.Bool("gui", false, "打开参数编辑窗口")
		sets       utils.Assignments
	)
	flag.Var(&sets, "set", "额外参数修改 key=value, 可重复")
	flag.Parse()

	params, err := buildParams(def, *period, *vdc, *duty, *shape, *invert, *offset, *comparator)
	if err != nil {
		log.Fatal(err)
	}
	edits, err := sets.Edits()
	if err != nil {
		log.Fatal(err)
	}
	for _, edit := range edits {
		if params, err = edit.Apply(params); err != nil {
			log.Fatal(err)
		}
	}

	if *gui {
		go func() {
			w, err := app.NewModulationApp(params, *samples)
			if err != nil {
				log.Fatal(err)
			}
			if err := w.Run(); err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		gioapp.Main()
		return
	}

	grid, err := maths.DefaultGrid(params.Period, *samples)
	if err != nil {
		log.Fatal(err)
	}
	record, charts := &render.Record{}, &render.Charts{}
	figure := render.NewFigure(8*vg.Inch, 7*vg.Inch)
	inv, err := inverter.NewInverter(params, grid, record, charts, figure)
	if err != nil {
		log.Fatal(err)
	}
	res := inv.Result()
	log.Printf("%s duty=%.3g: 平均电压理论值 %.6g, 采样平均 %.6g",
		params.Shape, params.DutyCycle, res.AvgInverterVoltage, res.SampledAverage())

	var g errgroup.Group
	for path, write := range map[string]func(*os.File) error{
		*pngOut:  func(f *os.File) error { return figure.Render(f) },
		*htmlOut: func(f *os.File) error { return charts.Render(f) },
		*csvOut:  func(f *os.File) error { return record.WriteCSV(f) },
		*jsonOut: func(f *os.File) error { return record.Render(f) },
	} {
		if path == "" {
			continue
		}
		path, write := path, write
		g.Go(func() error { return writeFile(path, write) })
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if *serve != "" {
		http.HandleFunc("/", inv.Handler(charts))
		log.Printf("网页服务 %s", *serve)
		log.Fatal(http.ListenAndServe(*serve, nil))
	}
}

// buildParams 命令行参数转换
func buildParams(def types.Params, period, vdc, duty float64, shape string, invert bool, offset float64, comparator string) (types.Params, error) {
	s, err := types.ParseShape(shape)
	if err != nil {
		return def, err
	}
	c, err := types.ParseComparator(comparator)
	if err != nil {
		return def, err
	}
	params := types.Params{
		Period:         period,
		DCAmplitude:    vdc,
		DutyCycle:      duty,
		Shape:          s,
		InvertCounter2: invert,
		Counter2Offset: offset,
		Comparator:     c,
	}
	return params, params.Validate()
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return f.Close()
}
