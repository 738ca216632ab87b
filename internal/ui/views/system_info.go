package views

import (
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	StorageDriver   string
	LedgerPath      string
	LedgerExists    bool // true = Found, false = Not Found
	DefaultCurrency string
	AppDataDir      string
}

func RenderSystemInfo(w io.Writer, data SystemInfoItem) error {
	ledgerStatus := pterm.Green("Found")
	if !data.LedgerExists {
		ledgerStatus = pterm.Red("Not Found (Will be created)")
	}

	currency := data.DefaultCurrency
	if currency == "" {
		currency = "(none)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.StorageDriver},
		{"Ledger Path", data.LedgerPath},
		{"Ledger Status", ledgerStatus},
		{"Default Currency", currency},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).WithWriter(w).Render()
}
