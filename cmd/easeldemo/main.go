// Command easeldemo opens an easel canvas, in a native window or else the
// terminal, and draws what you click. Press s for a screenshot, Escape to
// quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/easel"
)

func main() {
	var (
		width   = flag.Int("width", 400, "canvas width")
		height  = flag.Int("height", 300, "canvas height")
		rate    = flag.Int("rate", 60, "maximum refreshes per second")
		output  = flag.String("output", "easeldemo.png", "screenshot file")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer f.Close()
		easel.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	s, err := easel.Open(*width, *height,
		easel.WithRefreshRate(*rate),
		easel.WithTitle("easel demo"),
		easel.WithEvents(easel.LeftClick, easel.RightClick, easel.KeyPress))
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	if err := drawScene(s, float64(*width), float64(*height)); err != nil {
		_ = s.Close()
		log.Fatalf("Failed to draw: %v", err)
	}
	shot, err := run(s, *output)
	if err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
	if shot != "" {
		log.Printf("Screenshot saved to %s", shot)
	}
}

func drawScene(s *easel.Session, w, h float64) error {
	if _, err := s.Rectangle(0, 0, w, h/2, easel.Fill("lightskyblue"), easel.Color("")); err != nil {
		return err
	}
	if _, err := s.Rectangle(0, h/2, w, h, easel.Fill("forestgreen"), easel.Color("")); err != nil {
		return err
	}
	if _, err := s.Circle(w-50, 50, 30, easel.Fill("gold"), easel.Color("orange"), easel.Width(3)); err != nil {
		return err
	}

	// five pointed star
	var star []easel.Vertex
	for i := range 10 {
		r := 40.0
		if i%2 == 1 {
			r = 16
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		star = append(star, easel.Vertex{X: 80 + r*math.Cos(a), Y: 80 + r*math.Sin(a)})
	}
	if _, err := s.Polygon(star, easel.Fill("yellow"), easel.Color("darkorange")); err != nil {
		return err
	}
	_, err := s.Text(w/2, h-10, "click to draw, s to save, Esc to quit",
		easel.Anchor("s"), easel.FontSize(14), easel.Color("white"))
	return err
}

// run handles events until the window closes and returns the path of the
// last screenshot taken.
func run(s *easel.Session, output string) (string, error) {
	var shot string
	for {
		ev, err := s.WaitEvent()
		if err != nil {
			return shot, err
		}
		switch easel.Kind(ev) {
		case easel.Quit:
			return shot, s.Close()
		case easel.LeftClick, easel.RightClick:
			x, _ := easel.X(ev)
			y, _ := easel.Y(ev)
			color := "crimson"
			if easel.Kind(ev) == easel.RightClick {
				color = "royalblue"
			}
			if _, err := s.Circle(float64(x), float64(y), 8, easel.Fill(color), easel.Tag("dot")); err != nil {
				return shot, err
			}
		case easel.KeyPress:
			key, _ := easel.Key(ev)
			switch key {
			case "Escape", "q":
				return shot, s.Close()
			case "s":
				if shot, err = s.Screenshot(output); err != nil {
					return shot, fmt.Errorf("screenshot: %w", err)
				}
			case "c":
				if err := s.DeleteTag("dot"); err != nil {
					return shot, err
				}
			}
		}
	}
}
