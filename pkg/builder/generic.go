package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-facet/facet/pkg/element"
)

// GenericBuilder builds nothing: it prints the record's name and
// properties at the current indentation level and returns a widgetless
// record. It backs the "NoneType" tag and is useful for previewing a
// configuration without a native layer.
type GenericBuilder struct{}

func (GenericBuilder) Build(ctx *Context) (*element.Record, error) {
	indent := strings.Repeat("    ", ctx.Level)
	fmt.Fprintf(ctx.Diagnostics, "%s%s\n", indent, ctx.Name)

	keys := make([]string, 0, len(ctx.Properties))
	for k := range ctx.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(ctx.Diagnostics, "%s%s is %v\n", indent, k, ctx.Properties[k])
	}
	fmt.Fprintln(ctx.Diagnostics)

	return newRecord(ctx, "NoneType", nil, nil, recordSpec{
		Activator:     AlwaysReadable,
		RequiredValue: true,
		EventType:     "NoneType",
		Action:        "print",
		Visible:       true,
		OnNewRow:      false,
		Specific:      ctx.Properties.Clone(),
	}), nil
}
