package cli

import (
	"sort"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mapazajec/mapazajec-backend/internal/catalog"
	"github.com/mapazajec/mapazajec-backend/internal/config"
)

const (
	tableActivityTypes = "activity-types"
	tableAgeGroups     = "age-groups"

	schemaCanonical = "canonical"
	schemaLegacy    = "legacy"

	formatJSON    = "json"
	formatMsgpack = "msgpack"

	sortTable = "table"
	sortKey   = "key"
	sortLabel = "label"
)

var ErrInvalidFlag = errors.New("invalid flag value")

func dumpCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "write a catalog table to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "table", Value: tableActivityTypes, Usage: "activity-types or age-groups"},
			&cli.StringFlag{Name: "schema", Value: schemaCanonical, Usage: "canonical or legacy"},
			&cli.StringFlag{Name: "format", Value: cfg.DefaultFormat, Usage: "json or msgpack"},
			&cli.StringFlag{Name: "sort", Value: sortTable, Usage: "table, key or label"},
		},
		Action: func(c *cli.Context) error {
			rows, err := selectTable(c.String("table"), c.String("schema"), c.String("sort"))
			if err != nil {
				return err
			}
			b, err := encode(rows, c.String("format"))
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(b)
			return err
		},
	}
}

func selectTable(table, schema, order string) (interface{}, error) {
	if order != sortTable && order != sortKey && order != sortLabel {
		return nil, errors.Wrapf(ErrInvalidFlag, "sort %q", order)
	}
	if schema != schemaCanonical && schema != schemaLegacy {
		return nil, errors.Wrapf(ErrInvalidFlag, "schema %q", schema)
	}
	col := collate.New(language.Polish)

	switch table {
	case tableActivityTypes:
		if schema == schemaLegacy {
			rows := catalog.LegacyActivityTypes()
			sortRows(len(rows), order,
				func(i, j int) bool { return rows[i].Key < rows[j].Key },
				func(i, j int) bool { return col.CompareString(rows[i].Label, rows[j].Label) < 0 },
				func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
			return rows, nil
		}
		rows := catalog.ActivityTypes()
		sortRows(len(rows), order,
			func(i, j int) bool { return rows[i].Key < rows[j].Key },
			func(i, j int) bool { return col.CompareString(rows[i].Label, rows[j].Label) < 0 },
			func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		return rows, nil
	case tableAgeGroups:
		rows := catalog.AgeGroups()
		if schema == schemaLegacy {
			rows = catalog.LegacyAgeGroups()
		}
		sortRows(len(rows), order,
			func(i, j int) bool { return rows[i].Min < rows[j].Min },
			func(i, j int) bool { return col.CompareString(rows[i].Label, rows[j].Label) < 0 },
			func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
		return rows, nil
	default:
		return nil, errors.Wrapf(ErrInvalidFlag, "table %q", table)
	}
}

type lessFunc func(i, j int) bool

type rowSorter struct {
	n    int
	less lessFunc
	swap func(i, j int)
}

func (s rowSorter) Len() int           { return s.n }
func (s rowSorter) Less(i, j int) bool { return s.less(i, j) }
func (s rowSorter) Swap(i, j int)      { s.swap(i, j) }

func sortRows(n int, order string, byKey, byLabel lessFunc, swap func(i, j int)) {
	switch order {
	case sortKey:
		sort.Stable(rowSorter{n: n, less: byKey, swap: swap})
	case sortLabel:
		sort.Stable(rowSorter{n: n, less: byLabel, swap: swap})
	}
}

func encode(v interface{}, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case formatMsgpack:
		return msgpack.Marshal(v)
	default:
		return nil, errors.Wrapf(ErrInvalidFlag, "format %q", format)
	}
}
