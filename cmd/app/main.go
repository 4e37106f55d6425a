package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jmalherbe/cadence/internal/config"
	"github.com/jmalherbe/cadence/internal/database"
	"github.com/jmalherbe/cadence/internal/schedule"
	"github.com/jmalherbe/cadence/internal/service"
	"github.com/jmalherbe/cadence/internal/tui"
	"github.com/jmalherbe/cadence/internal/util"
)

func main() {
	exportPath := flag.String("export", "", "write a full data export to the given file and exit")
	importPath := flag.String("import", "", "restore a data export from the given file and exit")
	themeName := flag.String("theme", "", "color theme override")
	flag.Parse()

	ctx := context.Background()

	dbRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dbRoot, 0o755)
	dbPath := filepath.Join(dbRoot, config.DBFileName)

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *exportPath != "" {
		if err := runExport(ctx, db, *exportPath); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported to %s\n", *exportPath)
		return
	}
	if *importPath != "" {
		if err := runImport(ctx, db, *importPath); err != nil {
			fmt.Printf("Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported from %s\n", *importPath)
		return
	}

	if *themeName != "" {
		tui.SetTheme(*themeName)
	} else if saved, ok := db.GetSetting(ctx, config.SettingTheme); ok {
		tui.SetTheme(saved)
	}

	engine := schedule.New(nil)
	svc := service.New(db, engine)
	model := tui.NewMainModel(ctx, svc, engine)

	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// runExport writes the vault to path, encrypted when the user supplies a
// passphrase at the prompt.
func runExport(ctx context.Context, db *database.Database, path string) error {
	pass, err := promptForKey("Export passphrase (leave empty for plaintext): ")
	if err != nil {
		return err
	}

	opts := database.ExportOptions{}
	if pass != "" {
		if err := util.ValidatePassphrase(pass); err != nil {
			return fmt.Errorf("passphrase too weak: %w", err)
		}
		opts.EncryptOutput = true
		opts.Passphrase = pass
		if hash, herr := util.HashPassphrase(pass); herr == nil {
			_ = db.SetSetting(ctx, config.SettingExportPassHash, hash)
		}
	}

	payload, err := db.ExportAll(ctx, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// runImport restores a vault file, prompting for a passphrase when the
// payload is encrypted.
func runImport(ctx context.Context, db *database.Database, path string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if strings.Contains(string(payload), `"encrypted": true`) || strings.Contains(string(payload), `"encrypted":true`) {
		pass, perr := promptForKey("Import passphrase: ")
		if perr != nil {
			return perr
		}
		if hash, ok := db.GetSetting(ctx, config.SettingExportPassHash); ok && !util.CheckPassphrase(hash, pass) {
			return fmt.Errorf("passphrase does not match the recorded export passphrase")
		}
		payload, err = database.DecryptExport(payload, pass)
		if err != nil {
			return err
		}
	}

	return db.ImportAll(ctx, payload)
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
