package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"ads-api/pkg/di"
)

const usage = `Usage: fieldcache <command> [flags]

Commands:
  invalidate --category <uuid>   Drop cached field definitions of one category
  invalidate --all               Drop cached field definitions of every category
  rules --category <uuid>        Print the posting rules built for a category
`

var (
	errUnknownCommand = errors.New("unknown command")
	errScopeRequired  = errors.New("either --category or --all is required")
	errScopeConflict  = errors.New("--category and --all are mutually exclusive")
)

type invalidateOptions struct {
	categoryID uuid.UUID
	all        bool
}

type rulesOptions struct {
	categoryID uuid.UUID
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprint(stdout, usage)
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch args[0] {
	case "invalidate":
		var opts invalidateOptions
		if opts, err = parseInvalidateFlags(args[1:]); err == nil {
			err = withContainer(func(c *di.Container) error { return invalidate(ctx, c, opts, stdout) })
		}
	case "rules":
		var opts rulesOptions
		if opts, err = parseRulesFlags(args[1:]); err == nil {
			err = withContainer(func(c *di.Container) error { return printRules(ctx, c, opts, stdout) })
		}
	default:
		err = fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}

	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		if errors.Is(err, errUnknownCommand) {
			fmt.Fprint(stderr, usage)
		}
		return 1
	}
	return 0
}

func parseInvalidateFlags(args []string) (invalidateOptions, error) {
	flagSet := flag.NewFlagSet("invalidate", flag.ContinueOnError)
	flagSet.SetOutput(&strings.Builder{}) // discard

	category := flagSet.String("category", "", "Category UUID")
	all := flagSet.Bool("all", false, "Invalidate every category")

	if err := flagSet.Parse(args); err != nil {
		return invalidateOptions{}, err
	}

	if *all && *category != "" {
		return invalidateOptions{}, errScopeConflict
	}
	if *all {
		return invalidateOptions{all: true}, nil
	}

	id, err := parseCategory(*category)
	if err != nil {
		return invalidateOptions{}, err
	}
	return invalidateOptions{categoryID: id}, nil
}

func parseRulesFlags(args []string) (rulesOptions, error) {
	flagSet := flag.NewFlagSet("rules", flag.ContinueOnError)
	flagSet.SetOutput(&strings.Builder{}) // discard

	category := flagSet.String("category", "", "Category UUID")

	if err := flagSet.Parse(args); err != nil {
		return rulesOptions{}, err
	}

	id, err := parseCategory(*category)
	if err != nil {
		return rulesOptions{}, err
	}
	return rulesOptions{categoryID: id}, nil
}

func parseCategory(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errScopeRequired
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --category %q: %w", raw, err)
	}
	return id, nil
}

// withContainer ใช้แค่ core (ไม่มี subscriber/janitor) แล้วปิดทุกครั้ง
func withContainer(fn func(c *di.Container) error) error {
	container := di.NewContainer()
	if err := container.InitializeCore(); err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer container.Cleanup()

	return fn(container)
}

func invalidate(ctx context.Context, c *di.Container, opts invalidateOptions, out io.Writer) error {
	if opts.all {
		n, err := c.FieldDefinitionService.InvalidateAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Invalidated %d cached categories\n", n)
		return nil
	}

	if err := c.FieldDefinitionService.Invalidate(ctx, opts.categoryID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Invalidated field cache for category %s\n", opts.categoryID)
	return nil
}

func printRules(ctx context.Context, c *di.Container, opts rulesOptions, out io.Writer) error {
	rules, err := c.RuleBuilder.BuildRules(ctx, opts.categoryID)
	if err != nil {
		return err
	}
	labels, err := c.RuleBuilder.BuildLabels(ctx, opts.categoryID)
	if err != nil {
		return err
	}
	writeRules(out, rules, labels)
	return nil
}
