package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/zclconf/go-cty/cty"

	"github.com/groblegark/orcinus/internal/schema"
	"github.com/groblegark/orcinus/internal/ui"
)

type answerJSON struct {
	Name    string `json:"name"`
	Answer  any    `json:"answer"`
	Emitted any    `json:"emitted"`
	Visible bool   `json:"visible"`
}

type fieldJSON struct {
	Name    string   `json:"name"`
	Text    string   `json:"text"`
	Help    string   `json:"help,omitempty"`
	Kind    string   `json:"kind"`
	Widget  string   `json:"widget"`
	Tab     string   `json:"tab,omitempty"`
	Group   string   `json:"group,omitempty"`
	Options []string `json:"options,omitempty"`
	Answer  any      `json:"answer"`
	Visible bool     `json:"visible"`
}

func printAnswersJSON(names []string) {
	values := session.Values()
	answers := make([]answerJSON, 0, len(names))
	for _, name := range names {
		raw, _ := session.Raw(name)
		emitted, _ := values.Get(name)
		answers = append(answers, answerJSON{
			Name:    name,
			Answer:  ctyJSON(raw),
			Emitted: ctyJSON(emitted),
			Visible: session.Visible(name),
		})
	}
	data, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printAnswersTable(names []string) {
	values := session.Values()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tANSWER\tEMITTED\tVISIBLE")
	for _, name := range names {
		raw, _ := session.Raw(name)
		emitted, _ := values.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			name,
			schema.Format(raw),
			schema.Format(emitted),
			yesNo(session.Visible(name)),
		)
	}
	w.Flush()
	fmt.Printf("\n%d answers\n", len(names))
}

func printFieldsJSON() {
	fields := session.Schema().Fields()
	out := make([]fieldJSON, 0, len(fields))
	for _, f := range fields {
		raw, _ := session.Raw(f.Name)
		fj := fieldJSON{
			Name:    f.Name,
			Text:    f.Text,
			Help:    f.Help,
			Kind:    f.Kind.String(),
			Widget:  f.Widget.String(),
			Tab:     f.Tab,
			Group:   f.Group,
			Answer:  ctyJSON(raw),
			Visible: session.Visible(f.Name),
		}
		for _, e := range f.Domain.Entries() {
			fj.Options = append(fj.Options, schema.Format(e.Value))
		}
		out = append(out, fj)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printFieldsTable() {
	// Leave the leading columns room and give the rest of the line to help.
	helpWidth := ui.Width(120) - 70
	if helpWidth < 20 {
		helpWidth = 20
	}

	fields := session.Schema().Fields()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tWIDGET\tANSWER\tVISIBLE\tHELP")
	for _, f := range fields {
		raw, _ := session.Raw(f.Name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Name,
			f.Kind,
			f.Widget,
			schema.Format(raw),
			yesNo(session.Visible(f.Name)),
			ui.Truncate(f.Help, helpWidth),
		)
	}
	w.Flush()
	fmt.Printf("\n%d fields\n", len(fields))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func ctyJSON(v cty.Value) any {
	if v == cty.NilVal || v.IsNull() {
		return nil
	}
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		return v.True()
	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			n, _ := bf.Int64()
			return n
		}
		f, _ := bf.Float64()
		return f
	}
	return schema.Format(v)
}
