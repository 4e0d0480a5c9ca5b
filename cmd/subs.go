package cmd

import (
	"fmt"

	"github.com/moneymind/moneymind/internal/cli"
	"github.com/moneymind/moneymind/internal/model"
	"github.com/moneymind/moneymind/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagSubDueDay   int
	flagSubCategory string
	flagSubWithin   int
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage recurring subscriptions",
	RunE:  runSubsList,
}

var subsAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a subscription",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubsAdd,
}

var subsPauseCmd = &cobra.Command{
	Use:   "pause <id|name>",
	Short: "Pause a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  func(c *cobra.Command, args []string) error { return setSubActive(args[0], false) },
}

var subsResumeCmd = &cobra.Command{
	Use:   "resume <id|name>",
	Short: "Resume a paused subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  func(c *cobra.Command, args []string) error { return setSubActive(args[0], true) },
}

var subsDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubsDelete,
}

var subsUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Subscriptions due soon",
	RunE:  runSubsUpcoming,
}

func init() {
	subsAddCmd.Flags().IntVar(&flagSubDueDay, "due", 1, "Day of month the subscription bills")
	subsAddCmd.Flags().StringVarP(&flagSubCategory, "category", "c", "Subscription", "Category")
	subsUpcomingCmd.Flags().IntVar(&flagSubWithin, "within", 7, "Days ahead to look")

	subsCmd.AddCommand(subsAddCmd, subsPauseCmd, subsResumeCmd, subsDeleteCmd, subsUpcomingCmd)
	rootCmd.AddCommand(subsCmd)
}

func runSubsList(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	if len(snap.subs) == 0 {
		fmt.Println("\n  No subscriptions. Add one with `moneymind subs add Netflix 15.49 --due 5`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SUBSCRIPTIONS"))
	fmt.Println()

	rows := make([][]string, 0, len(snap.subs))
	for _, s := range snap.subs {
		status := "active"
		if !s.Active {
			status = "paused"
		}
		rows = append(rows, []string{
			s.ID[:8],
			s.Name,
			fmt.Sprintf("%s %s", s.Category.Icon(), s.Category),
			fmt.Sprintf("day %d", s.DueDay),
			snap.money(s.Amount),
			status,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Category", "Due", "Monthly", "Status"},
		Rows:    rows,
	}))

	monthly := pipeline.SubscriptionCost(snap.subs)
	fmt.Printf("\n  Active total: %s/month (%s/year)\n\n", snap.money(monthly), snap.money(monthly*12))
	return nil
}

func runSubsAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	var amount float64
	if _, err := fmt.Sscanf(args[1], "%g", &amount); err != nil || amount <= 0 {
		return fmt.Errorf("invalid amount %q", args[1])
	}
	if flagSubDueDay < 1 || flagSubDueDay > 31 {
		return fmt.Errorf("due day %d out of range (1-31)", flagSubDueDay)
	}
	cat, ok := model.ParseCategory(flagSubCategory)
	if !ok {
		return fmt.Errorf("unknown category %q", flagSubCategory)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	sub, err := db.AddSubscription(model.Subscription{
		Name:     name,
		Amount:   amount,
		DueDay:   flagSubDueDay,
		Category: cat,
		Active:   true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added %s at %s/month, billing day %d (%s).\n",
		sub.Name, formatMoney(sub.Amount, cfg.General.Currency), sub.DueDay, sub.ID[:8])
	return nil
}

func setSubActive(key string, active bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := resolveSubscriptionID(db, key)
	if err != nil {
		return err
	}
	if err := db.SetSubscriptionActive(id, active); err != nil {
		return err
	}

	verb := "Paused"
	if active {
		verb = "Resumed"
	}
	fmt.Printf("  %s subscription %s.\n", verb, id[:8])
	return nil
}

func runSubsDelete(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := resolveSubscriptionID(db, args[0])
	if err != nil {
		return err
	}
	if err := db.DeleteSubscription(id); err != nil {
		return err
	}

	fmt.Printf("  Deleted subscription %s.\n", id[:8])
	return nil
}

func runSubsUpcoming(_ *cobra.Command, _ []string) error {
	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	upcoming := pipeline.UpcomingSubscriptions(snap.subs, snap.dayOfMonth(), snap.daysInMonth(), flagSubWithin)
	if len(upcoming) == 0 {
		fmt.Printf("\n  Nothing due in the next %d days.\n", flagSubWithin)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DUE SOON"))
	fmt.Println()

	rows := make([][]string, 0, len(upcoming))
	for _, u := range upcoming {
		due := fmt.Sprintf("in %d days", u.DaysUntilDue)
		switch u.DaysUntilDue {
		case 0:
			due = "today"
		case 1:
			due = "tomorrow"
		}
		rows = append(rows, []string{u.Name, snap.money(u.Amount), due})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Amount", "Due"},
		Rows:    rows,
	}))

	return nil
}
