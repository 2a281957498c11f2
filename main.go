package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ByLCY/linea/container"
	"github.com/ByLCY/linea/ruler"
	"github.com/ByLCY/linea/scene"
	"github.com/ByLCY/linea/surface"
	canvassurface "github.com/ByLCY/linea/surface/canvas"
	cellsurface "github.com/ByLCY/linea/surface/cell"
	"github.com/ByLCY/linea/theme"
	"github.com/ByLCY/linea/unit"
)

var (
	scenePath string
	outPath   string
	themePath string
	debugPath string
	cursorAt  string
	ppmm      float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "linea",
		Short: "在容器上叠加渲染度量标尺",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "根据场景文件渲染标尺并输出 PDF/PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(scenePath, outPath, themePath, debugPath, cursorAt, ppmm)
		},
	}
	renderCmd.Flags().StringVar(&scenePath, "scene", "", "场景文件路径（必填）")
	renderCmd.Flags().StringVar(&outPath, "out", "output/rulers.pdf", "输出路径（.pdf 或 .png）")
	renderCmd.Flags().StringVar(&themePath, "theme", "", "YAML 主题文件路径")
	renderCmd.Flags().StringVar(&debugPath, "debug", "", "刻度布局调试 JSON 输出路径")
	renderCmd.Flags().StringVar(&cursorAt, "cursor", "", "固定光标坐标，形如 237,118")
	renderCmd.Flags().Float64Var(&ppmm, "ppmm", 0, "实测像素/毫米，缺省按 96 DPI")
	renderCmd.MarkFlagRequired("scene")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "终端交互演示：鼠标移动时更新光标位置指示（q 退出，c 清除光标）",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(scenePath)
		},
	}
	liveCmd.Flags().StringVar(&scenePath, "scene", "", "场景文件路径，缺省使用内置场景")

	metricCmd := &cobra.Command{
		Use:   "metric",
		Short: "打印各单位对应的比例因子（像素/单位）",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetric(ppmm)
		},
	}
	metricCmd.Flags().Float64Var(&ppmm, "ppmm", 0, "实测像素/毫米，缺省按 96 DPI")

	rootCmd.AddCommand(renderCmd, liveCmd, metricCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene 打开并解析场景文件。
func loadScene(path string) (*scene.Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开场景文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := scene.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析场景失败: %w", err)
	}
	sc, err := scene.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("解析场景失败: %w", err)
	}
	return sc, nil
}

// applyTheme 将主题颜色写入尚未显式指定颜色的标尺配置。
func applyTheme(opts *ruler.Options, th theme.Theme) error {
	tick, err := th.TickColor()
	if err != nil {
		return fmt.Errorf("主题 tick 颜色无效: %w", err)
	}
	label, err := th.LabelColor()
	if err != nil {
		return fmt.Errorf("主题 label 颜色无效: %w", err)
	}
	guide, err := th.GuideColor()
	if err != nil {
		return fmt.Errorf("主题 guide 颜色无效: %w", err)
	}
	if opts.TickColor == nil {
		opts.TickColor = tick
	}
	if opts.LabelColor == nil {
		opts.LabelColor = label
	}
	if opts.GuideColor == nil {
		opts.GuideColor = guide
	}
	return nil
}

// runRender 串联场景解析、标尺构建与 PDF/PNG 输出。
func runRender(scenePath, outPath, themePath, debugPath, cursorAt string, ppmm float64) error {
	sc, err := loadScene(scenePath)
	if err != nil {
		return err
	}
	th, err := theme.Load(themePath)
	if err != nil {
		return fmt.Errorf("加载主题失败: %w", err)
	}
	bg, err := th.BackgroundColor()
	if err != nil {
		return fmt.Errorf("主题背景色无效: %w", err)
	}

	// Outside 摆放的标尺伸出容器边界，父画布按各边的厚度加边距。
	var padTop, padBottom, padLeft, padRight float64
	for _, spec := range sc.Rulers {
		resolved := ruler.ResolveOptions(&spec.Options)
		if resolved.Placement != ruler.Outside {
			continue
		}
		t := math.Round(resolved.Thickness)
		switch spec.Side {
		case scene.Top:
			padTop = math.Max(padTop, t)
		case scene.Bottom:
			padBottom = math.Max(padBottom, t)
		case scene.Left:
			padLeft = math.Max(padLeft, t)
		case scene.Right:
			padRight = math.Max(padRight, t)
		}
	}

	parent, err := canvassurface.New(sc.Width+padLeft+padRight, sc.Height+padTop+padBottom, canvassurface.Options{
		FontName:   th.Font.Name,
		FontPath:   th.Font.Path,
		FontSize:   th.Font.Size,
		Background: bg,
	})
	if err != nil {
		return fmt.Errorf("创建画布失败: %w", err)
	}
	drawContainerOutline(parent, padLeft, padTop, sc.Width, sc.Height)

	conts, rulers, err := buildRulers(sc, th, ppmm, func(spec scene.Spec) container.SurfaceFactory {
		return func(w, h, offX, offY float64) (surface.Surface, error) {
			x, y := padLeft+offX, padTop+offY
			switch spec.Side {
			case scene.Bottom:
				y = padTop + sc.Height - h - offY
			case scene.Right:
				x = padLeft + sc.Width - w - offX
			}
			return parent.View(x, y), nil
		}
	})
	if err != nil {
		return err
	}

	if cursorAt != "" {
		var cx, cy float64
		if _, err := fmt.Sscanf(cursorAt, "%f,%f", &cx, &cy); err != nil {
			return fmt.Errorf("光标坐标 %q 无效: %w", cursorAt, err)
		}
		for _, c := range conts {
			c.PointerMove(cx, cy)
		}
	}

	if debugPath != "" {
		if err := writeDebug(sc, rulers, debugPath); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("创建输出文件失败: %w", err)
	}
	defer out.Close()
	if strings.HasSuffix(strings.ToLower(outPath), ".png") {
		return parent.WritePNG(out)
	}
	return parent.WritePDF(out)
}

// buildRulers 为场景中的每个标尺创建独立容器并完成构造。
// ppmm 为实测像素/毫米，非正值表示采用缺省 96 DPI 度量。
func buildRulers(sc *scene.Scene, th theme.Theme, ppmm float64, factoryFor func(scene.Spec) container.SurfaceFactory) ([]*container.Static, []*ruler.Ruler, error) {
	var conts []*container.Static
	var rulers []*ruler.Ruler
	for _, spec := range sc.Rulers {
		opts := spec.Options
		if err := applyTheme(&opts, th); err != nil {
			return nil, nil, err
		}
		cont := container.NewStatic(sc.Width, sc.Height, factoryFor(spec))
		cont.SetPixelsPerMillimeter(ppmm)
		r, err := ruler.New(cont, &opts)
		if err != nil {
			return nil, nil, fmt.Errorf("构造 %s 标尺失败: %w", scene.SideToString(spec.Side), err)
		}
		conts = append(conts, cont)
		rulers = append(rulers, r)
	}
	return conts, rulers, nil
}

// drawContainerOutline 以浅色描出容器边界，便于确认标尺摆放。
func drawContainerOutline(parent *canvassurface.Surface, x, y, w, h float64) {
	parent.SetStrokeColor(outlineColor)
	parent.BeginPath()
	parent.MoveTo(x, y)
	parent.LineTo(x+w, y)
	parent.LineTo(x+w, y+h)
	parent.LineTo(x, y+h)
	parent.LineTo(x, y)
	parent.Stroke()
}

func writeDebug(sc *scene.Scene, rulers []*ruler.Ruler, debugPath string) error {
	d := &scene.DebugScene{Width: sc.Width, Height: sc.Height}
	for i, r := range rulers {
		length, thickness := r.Extent()
		orientation := "horizontal"
		if sc.Rulers[i].Options.Orientation == ruler.Vertical {
			orientation = "vertical"
		}
		d.Rulers = append(d.Rulers, scene.DebugRuler{
			Side:        scene.SideToString(sc.Rulers[i].Side),
			Orientation: orientation,
			Length:      length,
			Thickness:   thickness,
			Scale:       r.Scale(),
			Ticks:       r.Layout(),
		})
	}
	if dir := filepath.Dir(debugPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
	}
	if err := scene.WriteDebugJSON(d, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

// defaultLiveScene 是 live 命令的内置场景：顶部与左侧各一把 Inside 标尺。
const defaultLiveScene = `
scene 80 24 {
	ruler top {
		major 10
		minor 5
		micro -1
		thickness 3
		placement inside
	}
	ruler left {
		major 10
		minor 5
		micro -1
		thickness 5
		placement inside
	}
}
`

// runLive 启动终端交互演示：标尺叠加在终端区域上，随鼠标移动更新光标指示。
func runLive(scenePath string) error {
	var sc *scene.Scene
	var err error
	if scenePath != "" {
		sc, err = loadScene(scenePath)
		if err != nil {
			return err
		}
	} else {
		doc, perr := scene.ParseString(defaultLiveScene)
		if perr != nil {
			return perr
		}
		sc, err = scene.Build(doc)
		if err != nil {
			return err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端屏幕失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端失败: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	cols, rows := screen.Size()
	width, height := float64(cols), float64(rows)
	sc.Width, sc.Height = width, height

	conts, rulers, err := buildRulers(sc, theme.Default(), 0, func(spec scene.Spec) container.SurfaceFactory {
		return func(w, h, offX, offY float64) (surface.Surface, error) {
			x, y := offX, offY
			switch spec.Side {
			case scene.Bottom:
				y = sc.Height - h - offY
			case scene.Right:
				x = sc.Width - w - offX
			}
			return cellsurface.New(screen,
				int(math.Round(x)), int(math.Round(y)),
				int(math.Round(w)), int(math.Round(h)))
		}
	})
	if err != nil {
		return err
	}
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
			if ev.Rune() == 'c' {
				for _, c := range conts {
					c.PointerLeave()
				}
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			for _, c := range conts {
				c.PointerMove(float64(x), float64(y))
			}
		case *tcell.EventResize:
			screen.Sync()
			cols, rows = screen.Size()
			sc.Width, sc.Height = float64(cols), float64(rows)
			for _, c := range conts {
				c.SetSize(sc.Width, sc.Height)
			}
			for _, r := range rulers {
				r.Refresh()
			}
		case nil:
			return nil
		}
	}
}

// runMetric 打印当前度量下各单位的比例因子。
func runMetric(ppmm float64) error {
	m := unit.DefaultMetric()
	if ppmm > 0 {
		m = unit.Metric{PxPerMM: ppmm}
	}
	for _, u := range []unit.Unit{unit.UnitPX, unit.UnitMM, unit.UnitCM, unit.UnitIN} {
		fmt.Printf("%s\t%g px/unit\n", unit.UnitToString(u), m.Resolve(u))
	}
	return nil
}

// 容器边界描边使用的浅灰色。
var outlineColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
