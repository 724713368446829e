// Package main generates the full ESG dashboard accuracy report on the
// command line. It takes no arguments: the dataset CSV is read from the
// working directory and the fixed-width report is printed to stdout.
package main

import (
	"errors"
	"fmt"

	"github.com/aristath/esglens/internal/modules/accuracy"
	"github.com/aristath/esglens/internal/modules/dataset"
	"github.com/aristath/esglens/pkg/logger"
)

const datasetFilename = "company_esg_financial_dataset.csv"

func main() {
	log := logger.New(logger.Config{Level: "error", Pretty: true})

	loader := dataset.NewLoader(log)
	ds, err := loader.LoadCSV(datasetFilename)
	if err != nil {
		// A missing dataset is reported, not raised: the report simply
		// cannot be produced.
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			fmt.Println("Error: Dataset file not found!")
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	engine, err := accuracy.NewEngine(accuracy.DefaultConfig(), log)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	card, err := engine.Evaluate(ds)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Print(accuracy.Render(card))
}
