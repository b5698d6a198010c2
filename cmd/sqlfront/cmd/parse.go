package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/freeeve/sqlfront"
	"github.com/freeeve/sqlfront/dialect"
)

var (
	parseDialectName string
	parseShowAST     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.sql>",
	Short: "Parse a SQL file and re-emit canonical SQL",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseDialectName, "dialect", "", "dialect name (postgres, mysql, bigquery, ...); default is ANSI")
	parseCmd.Flags().BoolVar(&parseShowAST, "ast", false, "print the parsed AST instead of canonical SQL")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	log := logrus.StandardLogger()

	src, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}

	var stmts []sqlfront.Statement
	if parseDialectName != "" {
		d := dialect.Lookup(parseDialectName)
		if d == nil {
			return errors.Errorf("unknown dialect %q (see `sqlfront dialects`)", parseDialectName)
		}
		stmts, err = sqlfront.ParseAllDialect(string(src), d)
	} else {
		stmts, err = sqlfront.ParseAll(string(src))
	}
	if err != nil {
		log.WithField("file", args[0]).Error("parse failed")
		return errors.Wrap(err, "parse")
	}

	for _, stmt := range stmts {
		if parseShowAST {
			fmt.Println(repr.String(stmt, repr.Indent("  ")))
			continue
		}
		fmt.Println(sqlfront.String(stmt) + ";")
	}
	return nil
}
