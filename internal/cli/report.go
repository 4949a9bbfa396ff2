package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SIIR3X/network-segmenter/subnet"
)

// subnetRow is one line of a segmentation or info report.
type subnetRow struct {
	Subnet    string `json:"subnet" yaml:"subnet"`
	FirstHost string `json:"first_host" yaml:"first_host"`
	LastHost  string `json:"last_host" yaml:"last_host"`
	Broadcast string `json:"broadcast,omitempty" yaml:"broadcast,omitempty"`
	Capacity  string `json:"capacity" yaml:"capacity"`
}

func networkRow(n *subnet.Network) subnetRow {
	row := subnetRow{
		Subnet:    n.String(),
		FirstHost: n.FirstHost().String(),
		LastHost:  n.LastHost().String(),
		Capacity:  n.HostCount().String(),
	}
	if bc, ok := n.Broadcast(); ok {
		row.Broadcast = bc.String()
	}
	return row
}

func subnetReport(subnets []*subnet.Network) []subnetRow {
	rows := make([]subnetRow, len(subnets))
	for i, s := range subnets {
		rows[i] = networkRow(s)
	}
	return rows
}

// printTable renders rows as a bordered table. The Broadcast column only
// appears for IPv4 reports.
func printTable(w io.Writer, rows []subnetRow) {
	if len(rows) == 0 {
		return
	}
	headers := []string{"Subnet", "Host Range", "Capacity"}
	if rows[0].Broadcast != "" {
		headers = []string{"Subnet", "Host Range", "Broadcast", "Capacity"}
	}
	table := make([][]string, len(rows))
	for i, r := range rows {
		hostRange := r.FirstHost + " - " + r.LastHost
		if r.Broadcast != "" {
			table[i] = []string{r.Subnet, hostRange, r.Broadcast, r.Capacity}
		} else {
			table[i] = []string{r.Subnet, hostRange, r.Capacity}
		}
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, cells := range table {
		for i, c := range cells {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	border := tableBorder(widths)
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, headerLine(headers, widths))
	fmt.Fprintln(w, border)
	for _, cells := range table {
		fmt.Fprintln(w, rowLine(cells, widths))
	}
	fmt.Fprintln(w, border)
}

func tableBorder(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteByte('+')
	return b.String()
}

func headerLine(headers []string, widths []int) string {
	var b strings.Builder
	for i, h := range headers {
		pad := widths[i] - len(h)
		b.WriteString("| ")
		b.WriteString(strings.Repeat(" ", pad/2))
		b.WriteString(h)
		b.WriteString(strings.Repeat(" ", pad-pad/2))
		b.WriteByte(' ')
	}
	b.WriteByte('|')
	return b.String()
}

func rowLine(cells []string, widths []int) string {
	var b strings.Builder
	for i, c := range cells {
		fmt.Fprintf(&b, "| %-*s ", widths[i], c)
	}
	b.WriteByte('|')
	return b.String()
}
