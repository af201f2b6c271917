package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"furniture-lab/domain/furniture"
	"furniture-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "data/showroom", "Path to badger DB")
	colours := flag.Bool("colours", true, "Colorized output")
	flag.Parse()

	// Read-only, and BypassLockGuard so the showroom can keep its lock.
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewDemonstrationRepository(db, logs.GetLoggerFromString("WARN"))

	demonstrations, err := repository.List()
	if err != nil {
		log.Fatal("Error while listing demonstrations: ", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Variant", "At", "Sleep line", "Sit line"})
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

	for _, demonstration := range demonstrations {
		table.Append([]string{
			demonstration.ID.String(),
			string(demonstration.Variant),
			demonstration.At.Format("2006-01-02 15:04:05"),
			demonstration.SleepLine,
			demonstration.SitLine,
		})
	}
	table.Render()

	variants, err := repository.Variants()
	if err != nil {
		log.Fatal("Error while summarizing variants: ", err)
	}
	summary := fmt.Sprintf("%d demonstration(s), variants seen: %v",
		len(demonstrations),
		lo.Map(variants, func(v furniture.Variant, _ int) string { return string(v) }),
	)
	if *colours {
		summary = color.New(color.BgBlack, color.FgGreen).Render(summary)
	}
	fmt.Println(summary)
}
