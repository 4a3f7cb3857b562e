package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"benefitflow/domain/core/entities"
	"benefitflow/infrastructure/config"
	"benefitflow/infrastructure/di"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo assessment in the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		return fmt.Errorf("initializing container: %w", err)
	}
	defer container.Close()

	assessment, err := demoAssessment()
	if err != nil {
		return err
	}

	if err := container.Service.CreateAssessment(ctx, assessment); err != nil {
		return fmt.Errorf("saving demo assessment: %w", err)
	}

	fmt.Printf("Seeded assessment %s\n", assessment.ID())
	fmt.Printf("Open /assessments/%s to view it\n", assessment.ID())
	return nil
}

func demoAssessment() (*entities.Assessment, error) {
	a, err := entities.NewAssessment("Arctic observing benefit assessment")
	if err != nil {
		return nil, err
	}

	buoys, err := entities.NewNode("Ice-tethered buoy network", "Buoys", entities.NodeTypeObservingSystem)
	if err != nil {
		return nil, err
	}
	forecast, err := entities.NewNode("Sea ice forecast product", "Ice forecast", entities.NodeTypeDataProduct)
	if err != nil {
		return nil, err
	}
	shipping, err := entities.NewNode("Shipping route planning", "Shipping", entities.NodeTypeApplication)
	if err != nil {
		return nil, err
	}
	safety, err := entities.NewNode("Maritime safety", "", entities.NodeTypeBenefitArea)
	if err != nil {
		return nil, err
	}

	a.AddNode(buoys)
	a.AddNode(forecast)
	a.AddNode(shipping)
	a.AddNode(safety)

	for _, pair := range []struct {
		from, to *entities.Node
		weight   float64
	}{
		{buoys, forecast, 4},
		{forecast, shipping, 3},
		{shipping, safety, 5},
	} {
		l, err := entities.NewLink(pair.from.ID(), pair.to.ID(), pair.weight)
		if err != nil {
			return nil, err
		}
		if err := a.AddLink(l); err != nil {
			return nil, err
		}
	}

	return a, nil
}
