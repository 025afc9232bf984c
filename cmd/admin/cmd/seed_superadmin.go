package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/usecase"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/repository"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/store"
)

var (
	seedSuperAdminCmd = &cobra.Command{
		RunE:  runSeedSuperAdmin,
		Use:   "seed-superadmin",
		Short: "crea o actualiza la cuenta superadmin",
		Long:  `Conecta al almacén, hashea la contraseña y hace upsert del superadmin por email.`,
	}
	seedEmail    string
	seedPassword string
	seedName     string
)

func init() {
	seedSuperAdminCmd.Flags().StringVar(&seedEmail, "email", "superadmin@escuela.local", "email del superadmin")
	seedSuperAdminCmd.Flags().StringVar(&seedPassword, "password", "", "contraseña (8 a 72 bytes)")
	seedSuperAdminCmd.Flags().StringVar(&seedName, "name", "Super Administrador", "nombre completo")
	_ = seedSuperAdminCmd.MarkFlagRequired("password")
}

func runSeedSuperAdmin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	repos, err := store.Open(ctx, cfg, store.Options{Migrate: true})
	if err != nil {
		return err
	}
	defer repos.Close(context.Background())

	return seedSuperAdmin(ctx, repos.Users, cmd.OutOrStdout(), seedEmail, seedPassword, seedName)
}

// seedSuperAdmin es idempotente: repetirlo solo actualiza nombre, contraseña y estado.
func seedSuperAdmin(ctx context.Context, users repository.UserRepository, out io.Writer, email, password, name string) error {
	email = usecase.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("seed-superadmin: email inválido %q", email)
	}
	if len(password) < 8 || len(password) > usecase.MaxPasswordBytes {
		return fmt.Errorf("seed-superadmin: la contraseña debe tener entre 8 y %d bytes", usecase.MaxPasswordBytes)
	}
	hash, err := usecase.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	u := &entity.User{
		FullName:     strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleSuperAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Upsert(ctx, u); err != nil {
		return fmt.Errorf("seed-superadmin: %w", err)
	}
	fmt.Fprintf(out, "superadmin listo: %s (id %s)\n", u.Email, u.ID)
	return nil
}
