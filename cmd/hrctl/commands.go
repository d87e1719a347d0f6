package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"go-hrdesk/internal/app"
	"go-hrdesk/internal/auth"
	"go-hrdesk/internal/bootstrap"
	"go-hrdesk/internal/config"
	"go-hrdesk/internal/payroll"
	"go-hrdesk/internal/shared/connection"
	"go-hrdesk/internal/shared/migration"

	"github.com/spf13/cobra"
)

const passwordEnv = "HRCTL_PASSWORD"

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "HR desk admin tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(migrateCmd(), userCmd(), payrollCmd())
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 1)
			if err != nil {
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := migration.Run(cmd.Context(), gormDB, app.Models()...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage HR desk accounts",
	}

	var (
		email string
		name  string
		role  string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create an HR desk account",
		Long: `Create an HR desk account. The password is read from the
` + passwordEnv + ` environment variable so it never shows up in shell history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password := os.Getenv(passwordEnv)
			if password == "" {
				return fmt.Errorf("%s is required", passwordEnv)
			}

			cfg := config.Load()
			gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 1)
			if err != nil {
				return err
			}
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			svc := auth.NewService(auth.NewRepository(gormDB), nil, cfg.JWTSecret, bootstrap.NewStdoutAuditLogger())
			user, err := svc.CreateUser(cmd.Context(), auth.CreateUserRequest{
				Email:    email,
				Name:     name,
				Password: password,
				Role:     role,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %d %s (%s)\n", user.ID, user.Email, user.Role)
			return nil
		},
	}
	add.Flags().StringVar(&email, "email", "", "Account email")
	add.Flags().StringVar(&name, "name", "", "Display name (defaults to the email)")
	add.Flags().StringVar(&role, "role", "HR", "ADMIN, HR or VIEWER")
	_ = add.MarkFlagRequired("email")

	cmd.AddCommand(add)
	return cmd
}

func payrollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "compute <base-salary>",
		Short: "Print the deductions and net salary for a base salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("base salary %q is not a number", args[0])
			}
			b, err := payroll.Compute(base)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Base Salary\t%.2f\n", b.BaseSalary)
			fmt.Fprintf(w, "PF (%.0f%%)\t%.2f\n", payroll.ProvidentFundRate*100, b.ProvidentFund)
			fmt.Fprintf(w, "ESIC (%.2f%%)\t%.2f\n", payroll.InsuranceRate*100, b.InsuranceContribution)
			fmt.Fprintf(w, "Total Salary\t%.2f\n", b.NetSalary)
			return w.Flush()
		},
	})
	return cmd
}
