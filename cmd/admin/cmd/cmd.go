package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:          "admin",
	Short:        "Tareas de administración del backend académico",
	Long:         `Comandos de un solo uso: migraciones y alta del superadministrador.`,
	SilenceUsage: true,
}

// Execute ejecuta el comando raíz; termina el proceso con código 1 ante error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig permite sustituir la carga en tests.
var loadConfig = config.Load

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedSuperAdminCmd)
}
