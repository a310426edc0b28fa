package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/domain/customer"
	"github.com/billfold/billfold/internal/domain/invoice"
	"github.com/billfold/billfold/internal/domain/product"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/repository"
	"github.com/billfold/billfold/internal/service"
	"github.com/billfold/billfold/internal/types"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present; environment variables win over the config file
	_ = godotenv.Load()

	var opts []fx.Option

	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Clock
			types.NewClock,

			// HTTP transport
			httpclient.NewClient,

			// Repositories
			repository.NewInvoiceRepository,
			repository.NewCustomerRepository,
			repository.NewProductRepository,

			// Services
			newServiceParams,
			service.NewInvoiceService,
			service.NewCustomerService,
			service.NewProductService,
		),
		fx.NopLogger,
		fx.Invoke(run),
	)

	fx.New(opts...).Run()
}

func newServiceParams(
	log *logger.Logger,
	cfg *config.Configuration,
	clock types.Clock,
	invoiceRepo invoice.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Clock:        clock,
		InvoiceRepo:  invoiceRepo,
		CustomerRepo: customerRepo,
		ProductRepo:  productRepo,
	}
}

func run(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	log *logger.Logger,
	invoices service.InvoiceService,
	customers service.CustomerService,
	products service.ProductService,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := execute(invoices, customers, products); err != nil {
					log.Errorw("command failed", "error", err)
					fmt.Fprintln(os.Stderr, "error:", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}

const usage = `usage: billfold <command> [args]

commands:
  list [query]           list invoices, optionally filtered by customer name
  show <id>              show one invoice
  finalize <id>          finalize a draft invoice
  pay <id>               mark a finalized invoice as paid
  delete <id>            delete an invoice
  customers <query>      search customers
  products <query>       search products
`

func execute(
	invoices service.InvoiceService,
	customers service.CustomerService,
	products service.ProductService,
) error {
	ctx := context.Background()
	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	switch args[0] {
	case "list":
		filter := types.NewInvoiceFilter()
		if len(args) > 1 {
			filter.CustomerQuery = args[1]
		}
		result, err := invoices.ListInvoices(ctx, filter)
		if err != nil {
			return err
		}
		return printJSON(result)

	case "show":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		inv, err := invoices.GetInvoice(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(inv)

	case "finalize":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		inv, err := invoices.FinalizeInvoice(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(inv)

	case "pay":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		inv, err := invoices.PayInvoice(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(inv)

	case "delete":
		id, err := parseID(args)
		if err != nil {
			return err
		}
		return invoices.DeleteInvoice(ctx, id)

	case "customers":
		if len(args) < 2 {
			return fmt.Errorf("customers requires a query")
		}
		result, err := customers.SearchCustomers(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(result)

	case "products":
		if len(args) < 2 {
			return fmt.Errorf("products requires a query")
		}
		result, err := products.SearchProducts(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(result)

	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func parseID(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s requires an invoice id", args[0])
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid invoice id %q", args[1])
	}
	return id, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
