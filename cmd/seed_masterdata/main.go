// seed_masterdata carga proveedores y ubicaciones de una empresa desde archivos CSV.
//
// Uso: go run ./cmd/seed_masterdata -company <id> [-suppliers proveedores.csv] [-locations ubicaciones.csv] [-charset ISO-8859-1]
//
// proveedores.csv: nit;nombre[;activo]   ubicaciones.csv: nombre[;planta]
// El separador (';' o ',') se detecta en la cabecera.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/inventory-entries/internal/infrastructure/masterdata"
	"github.com/jhoicas/inventory-entries/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-entries/pkg/config"
	"github.com/jhoicas/inventory-entries/pkg/logger"
)

func main() {
	companyID := flag.String("company", "", "empresa (tenant) dueña de los registros")
	suppliersPath := flag.String("suppliers", "", "CSV de proveedores")
	locationsPath := flag.String("locations", "", "CSV de ubicaciones")
	charset := flag.String("charset", "UTF-8", "codificación de los archivos (UTF-8, ISO-8859-1, Windows-1252)")
	flag.Parse()

	if *companyID == "" || (*suppliersPath == "" && *locationsPath == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	im := masterdata.NewImporter(postgres.NewSupplierRepository(pool), postgres.NewLocationRepository(pool), log)

	if *suppliersPath != "" {
		rows, err := masterdata.ReadSuppliersFile(*suppliersPath, *charset)
		if err != nil {
			log.Fatal().Err(err).Str("file", *suppliersPath).Msg("leer proveedores")
		}
		res, err := im.ImportSuppliers(ctx, *companyID, rows)
		if err != nil {
			log.Fatal().Err(err).Msg("importar proveedores")
		}
		fmt.Printf("Proveedores: %d creados, %d omitidos\n", res.Created, res.Skipped)
	}

	if *locationsPath != "" {
		rows, err := masterdata.ReadLocationsFile(*locationsPath, *charset)
		if err != nil {
			log.Fatal().Err(err).Str("file", *locationsPath).Msg("leer ubicaciones")
		}
		res, err := im.ImportLocations(ctx, *companyID, rows)
		if err != nil {
			log.Fatal().Err(err).Msg("importar ubicaciones")
		}
		fmt.Printf("Ubicaciones: %d creadas\n", res.Created)
		for i, id := range res.IDs {
			fmt.Printf("  %s\t%s\n", id, rows[i].Name)
		}
	}
}
