package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/gratitude/pkg/stats"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Heatmap renders every month the window touches as a compact grid, with
// day numbers weighted by that day's activity count.
func (pp *PrettyPrint) Heatmap(counts map[stats.Day]int, windowStart, windowEnd time.Time) {
	then := time.Date(windowStart.Year(), windowStart.Month(), 1, 0, 0, 0, 0, time.Local)
	last := time.Date(windowEnd.Year(), windowEnd.Month(), 1, 0, 0, 0, 0, time.Local)

	for !then.After(last) {
		pp.PrintMonthHeat(then, counts)
		then = then.AddDate(0, 1, 0)
	}
}

// PrintMonthHeat renders one month of the heatmap.
func (pp *PrettyPrint) PrintMonthHeat(then time.Time, counts map[stats.Day]int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	for i := 0; i < days; i++ {
		day := stats.Day{Year: then.Year(), Month: then.Month(), Day: i + 1}
		_, _ = heatPrinter(counts[day]).Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

// heatPrinter weights a day number by its activity count, mirroring the
// color-scale buckets of the web heatmap.
func heatPrinter(count int) *color.Color {
	switch {
	case count <= 0:
		return color.New(color.Faint, color.FgWhite)
	case count == 1:
		return color.New(color.FgGreen)
	case count == 2:
		return color.New(color.FgHiGreen)
	case count == 3:
		return color.New(color.Bold, color.FgHiGreen)
	default:
		return color.New(color.Bold, color.FgHiGreen, color.Underline)
	}
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location()).Weekday()
}
