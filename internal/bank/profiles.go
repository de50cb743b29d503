package bank

// Bank identifiers.
const (
	OCBC         = "ocbc"
	OCBCCard     = "ocbc_cc"
	SCBank       = "sc_bank"
	AmexCard     = "amex_cc"
	DBS          = "dbs"
	UOB          = "uob"
	UOBDeposit   = "uob_deposit"
	UOBCard      = "uob_cc"
	CitibankCard = "citibank_cc"
)

// DBSHeader is the header line the DBS normalizer seeks past the preamble.
const DBSHeader = "Transaction Date,Value Date,Statement Code,Reference,Debit Amount,Credit Amount,Client Reference,Additional Reference,Misc Reference"

// canonical is the field naming used by normalizers that emit the
// Date,Payee,Outflow,Inflow,Memo header themselves.
func canonical(id, name string, style Style) Profile {
	return Profile{
		ID:          id,
		Name:        name,
		Style:       style,
		DateField:   "Date",
		PayeeField:  "Payee",
		DebitField:  "Outflow",
		CreditField: "Inflow",
		MemoField:   "Memo",
	}
}

// DefaultRegistry returns a registry with every built-in bank. Spreadsheet
// detection follows this order.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(Profile{
		ID:           OCBC,
		Name:         "OCBC deposit account",
		HeaderPrefix: "Transaction date",
		Style:        StyleContinuation,
		DateField:    "Transaction date",
		PayeeField:   "Description",
		DebitField:   "Withdrawals(SGD)",
		CreditField:  "Deposits(SGD)",
		MemoField:    "Memo",
	})
	r.Register(Profile{
		ID:           OCBCCard,
		Name:         "OCBC credit card",
		HeaderPrefix: "Transaction date",
		Style:        StyleContinuation,
		DateField:    "Transaction date",
		PayeeField:   "Description",
		DebitField:   "Withdrawals (SGD)",
		CreditField:  "Deposits (SGD)",
		MemoField:    "Memo",
	})
	r.Register(Profile{
		ID:           SCBank,
		Name:         "Standard Chartered credit card",
		HeaderPrefix: "Date",
		Style:        StyleColumnMerge,
		DateField:    "Date",
		PayeeField:   "DESCRIPTION",
		DebitField:   "SGD Amount",
		MemoField:    "Foreign Currency Amount",
	})
	r.Register(Profile{
		ID:         AmexCard,
		Name:       "American Express credit card",
		Style:      StylePassthrough,
		DateField:  "Date",
		PayeeField: "Payee",
		DebitField: "Outflow",
		MemoField:  "Memo",
	})

	dbs := canonical(DBS, "DBS/POSB deposit account", StyleHeaderSeek)
	r.Register(dbs)

	uob := canonical(UOB, "UOB deposit account (CSV)", StyleHeaderRemap)
	uob.HeaderPrefix = "Transaction Date"
	r.Register(uob)

	r.Register(Profile{
		ID:           UOBDeposit,
		Name:         "UOB deposit account (XLS)",
		HeaderPrefix: "Transaction Date",
		Style:        StyleUnsupported,
		DateField:    "Transaction Date",
		PayeeField:   "Transaction Description",
		DebitField:   "Withdrawal",
		CreditField:  "Deposit",
		PositionalHeaders: []string{
			"Transaction Date",
			"Transaction Description",
			"Withdrawal",
			"Deposit",
			"Available Balance",
		},
	})
	r.Register(Profile{
		ID:           UOBCard,
		Name:         "UOB credit card (XLS)",
		HeaderPrefix: "Transaction Date",
		Style:        StyleUnsupported,
		DateField:    "Transaction Date",
		PayeeField:   "Description",
		DebitField:   "Transaction Amount(Local)",
		PositionalHeaders: []string{
			"Transaction Date",
			"Posting Date",
			"Description",
			"Foreign Currency Type",
			"Transaction Amount(Foreign)",
			"Local Currency Type",
			"Transaction Amount(Local)",
		},
	})

	r.Register(canonical(CitibankCard, "Citibank credit card", StyleSignedRemap))

	return r
}
