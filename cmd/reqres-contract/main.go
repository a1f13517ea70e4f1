/*
Copyright 2026 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reqres-contract/pkg/config"
	"github.com/unikorn-cloud/reqres-contract/pkg/constants"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres"
	"github.com/unikorn-cloud/reqres-contract/pkg/reqres/schema"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

const defaultFixturePath = "test/fixtures/users.json"

// runOptions are flags that only make sense for the command line runner.
type runOptions struct {
	metricsTextfile string
	openAPI         bool
}

func (o *runOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.metricsTextfile, "metrics-textfile", "", "Write metrics in the node exporter textfile format to this path.")
	f.BoolVar(&o.openAPI, "openapi", true, "Additionally validate responses against the OpenAPI description.")
}

func main() {
	var (
		configOptions config.Options
		options       runOptions
	)

	configOptions.AddFlags(pflag.CommandLine)
	options.AddFlags(pflag.CommandLine)

	zapOptions := zap.Options{
		Development: true,
	}

	zapOptions.BindFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	runID := uuid.NewString()

	logger := log.Log.WithName("init")
	logger.Info("contract suite starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision, "runID", runID)

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("contract").WithValues("runID", runID))

	cfg, err := config.Load([]string{configOptions.EnvFile}, configOptions.Overrides())
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, &options); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run validates both operations, collecting every failure rather than
// stopping at the first, so one run reports the whole contract.
func run(ctx context.Context, cfg *config.Config, options *runOptions) error {
	log := log.FromContext(ctx)

	fixturePath := cfg.FixturePath
	if fixturePath == "" {
		fixturePath = defaultFixturePath
	}

	fixtures, err := reqres.LoadFixtures(fixturePath)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()

	validatorOptions := cfg.ValidatorOptions()
	validatorOptions.Metrics = reqres.NewMetrics(registry)

	if options.openAPI {
		schemaValidator, err := schema.New(ctx)
		if err != nil {
			return err
		}

		validatorOptions.Schema = schemaValidator
	}

	validator := reqres.NewValidator(reqres.NewClient(cfg.ClientOptions()), validatorOptions)

	var errs []error

	if _, err := validator.ValidateListing(ctx, cfg.ListPage); err != nil {
		log.Error(err, "listing contract failed", "page", cfg.ListPage)

		errs = append(errs, fmt.Errorf("listing users: %w", err))
	}

	reports, err := validator.ValidateCreation(ctx, fixtures)
	if err != nil {
		errs = append(errs, fmt.Errorf("creating users: %w", err))
	}

	for i := range reports {
		if reports[i].Failed() {
			log.Error(reports[i].Err, "creation contract failed", "name", reports[i].Request.Name)
		}
	}

	if options.metricsTextfile != "" {
		if err := prometheus.WriteToTextfile(options.metricsTextfile, registry); err != nil {
			errs = append(errs, fmt.Errorf("writing metrics: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info("contract satisfied", "created", len(reports))

	return nil
}
