// seed_enterprises carga empresas desde un CSV (name,type,tax_id) usando el caso de uso,
// de modo que cada fila pasa por las mismas validaciones que la API.
//
// Uso: go run ./cmd/seed_enterprises [-encoding latin1|utf8] [-party id] empresas.csv
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/enterprise-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-api/internal/domain"
	"github.com/jhoicas/enterprise-api/internal/domain/repository"
	"github.com/jhoicas/enterprise-api/internal/infrastructure/postgres"
	"github.com/jhoicas/enterprise-api/pkg/config"
	"github.com/jhoicas/enterprise-api/pkg/logger"
)

type enterpriseRow struct {
	line  int
	name  string
	typ   string
	taxID string
}

func main() {
	encoding := flag.String("encoding", "utf8", "codificación del archivo: utf8 | latin1")
	partyID := flag.String("party", "", "party al que se vincula cada empresa creada")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_enterprises [-encoding latin1|utf8] [-party id] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	in, err := decodeInput(f, *encoding)
	if err != nil {
		log.Fatal().Err(err).Msg("codificación")
	}
	rows, err := readRows(in)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio")
	}
	defer closeRepo()

	uc := usecase.NewEnterpriseUseCase(repo, nil, log)
	created, rejected, err := importRows(ctx, uc, rows, *partyID, log)
	if err != nil {
		log.Error().Err(err).Int("created", created).Int("rejected", rejected).Msg("importación abortada")
		os.Exit(1)
	}
	log.Info().Int("created", created).Int("rejected", rejected).Msg("importación completada")
}

var errEphemeralStorage = errors.New("STORAGE_DRIVER=memory no persiste la importación; use postgres")

// openRepository abre el repositorio Postgres. El driver memory se rechaza: lo importado
// se perdería al terminar el proceso.
func openRepository(ctx context.Context, cfg *config.Config) (repository.EnterpriseRepository, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		return nil, nil, errEphemeralStorage
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewEnterpriseRepository(pool), pool.Close, nil
}

// decodeInput envuelve r con el decodificador ISO-8859-1 cuando se pide latin1.
func decodeInput(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf8", "utf-8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada %q", encoding)
	}
}

// readRows lee filas name,type,tax_id. La cabecera es opcional.
func readRows(r io.Reader) ([]enterpriseRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var rows []enterpriseRow
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		if line == 1 && isHeader(rec) {
			continue
		}
		rows = append(rows, enterpriseRow{
			line:  line,
			name:  strings.TrimSpace(rec[0]),
			typ:   strings.ToUpper(strings.TrimSpace(rec[1])),
			taxID: strings.TrimSpace(rec[2]),
		})
	}
}

func isHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(rec[0]), "name") &&
		strings.EqualFold(strings.TrimSpace(rec[2]), "tax_id")
}

// importRows crea cada fila. Los rechazos de validación se registran y se omiten;
// cualquier otro error aborta la importación.
func importRows(ctx context.Context, uc *usecase.EnterpriseUseCase, rows []enterpriseRow, partyID string, log *logger.Logger) (created, rejected int, err error) {
	for _, row := range rows {
		out, err := uc.CreateEnterprise(ctx, row.name, row.typ, row.taxID)
		if errors.Is(err, domain.ErrInvalidInput) {
			log.Warn().Int("line", row.line).Str("reason", err.Error()).Msg("fila rechazada")
			rejected++
			continue
		}
		if err != nil {
			return created, rejected, fmt.Errorf("línea %d: %w", row.line, err)
		}
		if partyID != "" {
			if err := uc.AssignToParty(ctx, partyID, out.ID); err != nil {
				return created, rejected, fmt.Errorf("línea %d: vincular party: %w", row.line, err)
			}
		}
		created++
	}
	return created, rejected, nil
}
