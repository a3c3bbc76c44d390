package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var (
	titleStyle   = color.New(color.BgBlack, color.FgGreen, color.OpBold)
	headingStyle = color.New(color.FgCyan, color.OpBold)
	errorStyle   = color.New(color.FgRed)
)

type renderer struct {
	out   io.Writer
	plain bool
}

func (r *renderer) style(s color.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *renderer) title() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.style(titleStyle, " Tour of Heroes "))
	fmt.Fprintln(r.out, "[dashboard] [heroes]")
}

func (r *renderer) heading(text string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.style(headingStyle, text))
}

func (r *renderer) prompt() {
	fmt.Fprint(r.out, "> ")
}

func (r *renderer) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.style(errorStyle, fmt.Sprintf(format, args...)))
}

func (r *renderer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func heroRows(heroes []heroesdk.Hero) [][]string {
	rows := make([][]string, len(heroes))
	for i, h := range heroes {
		rows[i] = []string{strconv.Itoa(h.ID), h.Name}
	}
	return rows
}

func (r *renderer) dashboard(top, results []heroesdk.Hero) {
	r.heading("Top Heroes")
	r.table([]string{"id", "name"}, heroRows(top))

	if len(results) > 0 {
		r.heading("Hero Search")
		r.table([]string{"id", "name"}, heroRows(results))
	}
}

func (r *renderer) heroes(heroes []*heroesdk.Hero) {
	r.heading("My Heroes")

	values := make([]heroesdk.Hero, len(heroes))
	for i, h := range heroes {
		values[i] = *h
	}
	r.table([]string{"id", "name"}, heroRows(values))
}

func (r *renderer) detail(hero *heroesdk.Hero) {
	if hero == nil {
		r.heading("Hero not found")
		return
	}
	r.heading(strings.ToUpper(hero.Name) + " Details")
	fmt.Fprintf(r.out, "id: %d\nname: %s\n", hero.ID, hero.Name)
}

func (r *renderer) messages(lines []string) {
	r.heading("Messages")
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}

func (r *renderer) help() {
	r.heading("Commands")
	r.table([]string{"command", "where", "does"}, [][]string{
		{"go <path>", "anywhere", "open /dashboard, /heroes or /detail/<id>"},
		{"back", "anywhere", "return to the previous view"},
		{"add <name>", "/heroes", "create a hero"},
		{"delete <id>", "/heroes", "delete a hero"},
		{"rename <name>", "/detail/<id>", "edit the hero's name"},
		{"save", "/detail/<id>", "store the edit and go back"},
		{"search <term>", "/dashboard", "find heroes by name"},
		{"messages", "anywhere", "show the message log"},
		{"clear", "anywhere", "clear the message log"},
		{"quit", "anywhere", "leave"},
	})
}
