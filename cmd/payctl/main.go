package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcarvalho-pb/payment_methods-go/internal/application/processing"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/instrument"
	"github.com/rcarvalho-pb/payment_methods-go/internal/domain/money"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/logging"
	"github.com/rcarvalho-pb/payment_methods-go/internal/infra/metrics"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "payctl",
		Short: "Demo driver for the payment instrument engine",
	}

	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(fallbackCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newProcessor() *processing.Processor {
	return &processing.Processor{
		Env:       instrument.SystemEnv(),
		MaxAmount: processing.DefaultMaxAmount,
		Logger:    logging.NopLogger{},
		Metrics:   &metrics.Counters{},
	}
}

func demoInstruments() []instrument.Instrument {
	in30Days := time.Now().AddDate(0, 0, 30)
	fiveDaysAgo := time.Now().AddDate(0, 0, -5)

	return []instrument.Instrument{
		instrument.NewCreditCard("4532015112830366", "João Silva", "12/27", "123",
			money.MustFromString("5000.00", money.BRL)),
		instrument.NewCreditCard("5555555555554444", "Maria Santos", "08/24", "456",
			money.MustFromString("2000.00", money.BRL)),
		instrument.NewBoleto("23791111100000001234567890123456789012345671234",
			&in30Days, "Loja ABC Ltda"),
		instrument.NewBoleto("10491111100000002234567890123456789012345671235",
			&fiveDaysAgo, "Prestadora de Serviços XYZ"),
		instrument.NewPix("11144477735", instrument.KeyCPF, "Pagamento de produto"),
		instrument.NewPix("usuario@exemplo.com", instrument.KeyEmail, "Transferência para amigo"),
		instrument.NewPix("+5511987654321", instrument.KeyPhone, "Pagamento de serviço"),
	}
}

func demoCmd() *cobra.Command {
	var amountFlag string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Charge every demo instrument and print receipts or rejections",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.NewFromString(amountFlag, money.BRL)
			if err != nil {
				return err
			}

			processor := newProcessor()
			instruments := demoInstruments()

			fmt.Println("available instruments:")
			for i, inst := range instruments {
				fmt.Printf("  %d. %s (%s)\n", i+1, inst.Description(), inst.MaskedID())
			}

			fmt.Printf("\ncharging %s on each instrument:\n", amount)
			for _, inst := range instruments {
				result := processor.Process(inst, &amount)
				if result.Succeeded() {
					fmt.Printf("  ok   %s\n", result.Receipt.Summary())
				} else {
					fmt.Printf("  fail %s: %s\n", inst.Description(), result.Err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "150.00", "Amount to charge")

	return cmd
}

func fallbackCmd() *cobra.Command {
	var amountFlag string

	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Try instruments in order until one settles",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := money.NewFromString(amountFlag, money.BRL)
			if err != nil {
				return err
			}

			processor := newProcessor()

			// a nearly exhausted card, an already paid slip and a good key
			card := instrument.NewCreditCard("4532015112830366", "João Silva", "12/27", "123",
				money.MustFromString("100.00", money.BRL))
			slip := instrument.NewBoleto("23791111100000001234567890123456789012345671234",
				nil, "Loja ABC Ltda")
			small := money.MustFromString("90.00", money.BRL)
			processor.Process(card, &small)
			processor.Process(slip, &small)

			key := instrument.NewPix("usuario@exemplo.com", instrument.KeyEmail, "")

			instruments := []instrument.Instrument{card, slip, key}

			result, attempts := processor.ProcessAny(instruments, &amount)
			for _, attempt := range attempts {
				if attempt.Result.Succeeded() {
					fmt.Printf("ok   %s\n", attempt.Result.Receipt.Summary())
				} else {
					fmt.Printf("fail %s: %s\n", attempt.Instrument.Description(), attempt.Result.Err)
				}
			}

			if !result.Succeeded() {
				return fmt.Errorf("no instrument could settle %s", amount)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&amountFlag, "amount", "a", "1299.99", "Amount to charge")

	return cmd
}
