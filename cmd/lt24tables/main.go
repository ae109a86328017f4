//go:build !tinygo

// Command lt24tables prints the panel init tables of the bring-up profiles
// and the differences between them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"lt24/app"
	"lt24/lcd"
)

func main() {
	var (
		profile string
		diff    string
		format  string
	)
	flag.StringVar(&profile, "profile", app.DefaultProfile, "Profile whose table is printed.")
	flag.StringVar(&diff, "diff", "", "Compare two profiles, e.g. solid,stripes.")
	flag.StringVar(&format, "format", "hex", "Output format: hex or c.")
	flag.Parse()

	var err error
	if diff != "" {
		err = printDiff(os.Stdout, diff)
	} else {
		err = printTable(os.Stdout, profile, format)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func lookup(name string) (app.Profile, error) {
	p, ok := app.LookupProfile(name)
	if !ok {
		return app.Profile{}, fmt.Errorf("unknown profile %q (have %s)", name, strings.Join(app.ProfileNames(), ", "))
	}
	return p, nil
}

func printTable(w io.Writer, name, format string) error {
	p, err := lookup(name)
	if err != nil {
		return err
	}
	for _, cmd := range p.Init {
		switch format {
		case "hex":
			fmt.Fprintln(w, formatHex(cmd))
		case "c":
			fmt.Fprintln(w, formatC(cmd))
		default:
			return fmt.Errorf("unknown format %q", format)
		}
	}
	return nil
}

func printDiff(w io.Writer, pair string) error {
	a, b, ok := strings.Cut(pair, ",")
	if !ok {
		return fmt.Errorf("diff wants two profiles separated by a comma, got %q", pair)
	}
	pa, err := lookup(a)
	if err != nil {
		return err
	}
	pb, err := lookup(b)
	if err != nil {
		return err
	}

	d := lcd.Diff(pa.Init, pb.Init)
	if len(d) == 0 {
		fmt.Fprintf(w, "%s and %s send identical init tables\n", pa.Name, pb.Name)
		return nil
	}
	for _, e := range d {
		fmt.Fprintf(w, "step %2d  %-8s %s\n", e.Index, pa.Name, side(e.A))
		fmt.Fprintf(w, "         %-8s %s\n", pb.Name, side(e.B))
	}
	return nil
}

func side(c *lcd.Command) string {
	if c == nil {
		return "(none)"
	}
	return formatHex(*c)
}

func formatHex(c lcd.Command) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%02x", c.Code)
	for _, p := range c.Sent() {
		fmt.Fprintf(&sb, " %02x", p)
	}
	return sb.String()
}

func formatC(c lcd.Command) string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = fmt.Sprintf("0x%02x", p)
	}
	return fmt.Sprintf("send_command(0x%02x, %d, (uint16_t []){ %s});", c.Code, c.Count, strings.Join(params, ", "))
}
