package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Siddhartha1011/AI-Astrologer/internal/domain"
)

var signDate string

var signCmd = &cobra.Command{
	Use:     "sign",
	Short:   "Print the zodiac sign and age for a birth date",
	Example: `  astrologerd sign --date 1990-04-20`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		born, err := domain.BirthData{BirthDate: signDate}.ParseBirthDate()
		if err != nil {
			return fmt.Errorf("--date %q: %w", signDate, err)
		}
		age := domain.Age(born, domain.SystemClock{}.Now())
		fmt.Fprintf(cmd.OutOrStdout(), "%s (age %d)\n", domain.ZodiacSign(born), age)
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signDate, "date", "", "birth date as YYYY-MM-DD")
	_ = signCmd.MarkFlagRequired("date")
}
