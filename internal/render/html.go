package render

import (
	"fmt"
	"io"
	"strings"
)

// HTML writes v as the task list container followed by the count line.
func HTML(w io.Writer, v View) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<ul id=\"task-list\" data-filter=\"%s\">\n", v.Filter)
	if v.Empty {
		fmt.Fprintf(&b, "  <li class=\"empty-state\"><span>%s</span><div>%s</div></li>\n", EmptyIcon, EmptyMessage)
	}
	for _, r := range v.Rows {
		writeRow(&b, r)
	}
	b.WriteString("</ul>\n")
	fmt.Fprintf(&b, "<span id=\"task-count\">%s</span>\n", Escape(v.Summary))
	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, r Row) {
	class := "task-item"
	checked := ""
	if r.Completed {
		class += " completed"
		checked = " checked"
	}
	fmt.Fprintf(b, "  <li class=\"%s\" data-id=\"%s\">\n", class, Escape(r.ID))
	b.WriteString("    <div class=\"task-left\">\n")
	fmt.Fprintf(b, "      <input type=\"checkbox\" class=\"task-checkbox\"%s />\n", checked)
	b.WriteString("      <div>\n")
	fmt.Fprintf(b, "        <div class=\"task-text\">%s</div>\n", Escape(r.Text))
	fmt.Fprintf(b, "        <div class=\"task-meta\">Added at %s</div>\n", r.Added)
	b.WriteString("      </div>\n")
	b.WriteString("    </div>\n")
	b.WriteString("    <div class=\"task-actions\">\n")
	b.WriteString("      <button class=\"icon-btn edit\" title=\"Edit task\">Edit</button>\n")
	b.WriteString("      <button class=\"icon-btn delete\" title=\"Delete task\">Delete</button>\n")
	b.WriteString("    </div>\n")
	b.WriteString("  </li>\n")
}
