package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/bytelayout/bytelayout"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to binary file to inspect")
		layoutDesc  = flag.String("layout", "", "Field list (name:kind,... e.g. type:u8,checksum:u16,payload:open)")
		orderName   = flag.String("order", "big", "Byte order: big, little or native")
		layoutName  = flag.String("name", "layout", "Layout name shown in output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *file == "" || *layoutDesc == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -file <data.bin> -layout <name:kind,...> [-order big|little|native]")
		fmt.Fprintln(os.Stderr, "       inspect -file <data.bin> -layout <name:kind,...> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Kinds: u8..u128, i8..i128, f32, f64, bool, char, unit,")
		fmt.Fprintln(os.Stderr, "       nonzero_u8..nonzero_i128, bytes:<n>, open")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		bytelayout.SetLogger(logger)
	}

	if err := run(*file, *layoutName, *layoutDesc, *orderName, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, name, desc, orderName string, interactive bool) error {
	order, err := parseOrder(orderName)
	if err != nil {
		return err
	}

	layout, err := parseLayout(name, desc, order)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := checkFits(layout, len(data)); err != nil {
		return err
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(file, layout, data)
	}

	return dump(layout, data)
}

func checkFits(l *bytelayout.Layout, have int) error {
	need := 0
	if total, ok := l.TotalSize(); ok {
		need = total
	} else if n := l.NumFields(); n > 0 {
		need = l.FieldAt(n - 1).Offset()
	}
	if have < need {
		return fmt.Errorf("file too short for layout: need at least %d bytes, have %d", need, have)
	}
	return nil
}

func dump(l *bytelayout.Layout, data []byte) error {
	view := l.View(bytelayout.BorrowReadOnly(data))

	fmt.Printf("Layout: %s\n", l)
	if total, ok := l.TotalSize(); ok {
		fmt.Printf("Size: %d bytes (%d in file)\n", total, len(data))
	} else {
		fmt.Printf("Size: open-ended (%d in file)\n", len(data))
	}

	fmt.Printf("\nFields:\n")
	for i := 0; i < l.NumFields(); i++ {
		fv := view.FieldAt(i)
		f := fv.Field()

		var rendered string
		if value, err := fv.ReadAny(); err != nil {
			rendered = "<" + err.Error() + ">"
		} else {
			rendered = formatValue(f, value)
		}
		fmt.Printf("  %-20s %-6s @%d+%d  %s\n", f.Name(), f.Kind(), f.Offset(), fv.Size(), rendered)
	}
	return nil
}

func formatValue(f *bytelayout.Field, v any) string {
	// Char fields come back as rune, which is indistinguishable from an
	// i32 in a type switch.
	if f.Kind() == bytelayout.KindChar {
		r := v.(rune)
		return fmt.Sprintf("%q (%#U)", r, r)
	}

	switch v := v.(type) {
	case []byte:
		const max = 32
		if len(v) > max {
			return fmt.Sprintf("% x ... (%d bytes)", v[:max], len(v))
		}
		return fmt.Sprintf("% x", v)
	case struct{}:
		return "()"
	case uint8, uint16, uint32, uint64, int8, int16, int32, int64:
		return fmt.Sprintf("%d (%#[1]x)", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
