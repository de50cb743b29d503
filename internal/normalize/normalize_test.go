package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynabfmt/ynabfmt/internal/bank"
	"github.com/ynabfmt/ynabfmt/internal/model"
)

func TestFor_EveryBankHasAStrategy(t *testing.T) {
	want := map[string]Normalizer{
		bank.OCBC:         &Continuation{},
		bank.OCBCCard:     &Continuation{},
		bank.SCBank:       &ColumnMerge{},
		bank.AmexCard:     &Passthrough{},
		bank.DBS:          &HeaderSeek{},
		bank.UOB:          &HeaderRemap{},
		bank.UOBDeposit:   &Unsupported{},
		bank.UOBCard:      &Unsupported{},
		bank.CitibankCard: &SignedRemap{},
	}
	for _, p := range bank.DefaultRegistry().All() {
		expected, ok := want[p.ID]
		require.True(t, ok, "no expectation for %s", p.ID)
		assert.IsType(t, expected, For(p), p.ID)
	}
}

func TestUnsupported(t *testing.T) {
	p, _ := bank.DefaultRegistry().Get(bank.UOBDeposit)
	lines := []string{"Transaction Date,Transaction Description", "01 Feb 2023,GRAB"}

	res, err := For(p).Normalize(lines)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnsupportedBank)
	require.NotNil(t, res)
	assert.Equal(t, lines, res.Lines)
}

func TestPassthrough(t *testing.T) {
	n := &Passthrough{}

	res, err := n.Normalize([]string{"", "03/02/2023,x,12.50,CAFE,memo,y", "", "04/02/2023,x,3.00,BAR,,y"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Date,SKIP,Outflow,Payee,Memo,SKIP",
		"03/02/2023,x,12.50,CAFE,memo,y",
		"04/02/2023,x,3.00,BAR,,y",
	}, res.Lines)

	res, err = n.Normalize([]string{"Date,Ref,Outflow,Payee,Memo,Other", "03/02/2023,x,12.50,CAFE,,y"})
	require.NoError(t, err)
	assert.Equal(t, "Date,Ref,Outflow,Payee,Memo,Other", res.Lines[0])
	assert.Len(t, res.Lines, 2)
}

func TestHeaderRemap(t *testing.T) {
	n := &HeaderRemap{}
	res, err := n.Normalize([]string{
		"Transaction Date,Transaction Description,Withdrawal,Deposit,Available Balance",
		"01/02/2023,  NETS   QR\nPAYMENT,4.50,,995.50",
		"",
		"02/02/2023,SALARY,,\"1,000.00\",\"1,995.50\"",
		"03/02/2023,SHORT,1.00",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Date,Payee,Outflow,Inflow,Memo",
		"01/02/2023,NETS QR PAYMENT,4.50,,995.50",
		"02/02/2023,SALARY,,1000.00,\"1,995.50\"",
	}, res.Lines)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, model.WarnColumnCount, res.Warnings[0].Kind)
	assert.Equal(t, 5, res.Warnings[0].Line)
}

func TestSignedRemap(t *testing.T) {
	n := &SignedRemap{}
	res, err := n.Normalize([]string{
		`"12/02/2023","GRAB RIDES SINGAPORE SG","-15.20","",""`,
		`"13/02/2023","PAYMENT - THANK YOU","500.00","",""`,
		`"14/02/2023","SHOPEE SG","-3","",""`,
		`"Total","","","",""`,
		"",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Date,Payee,Outflow,Inflow,Memo",
		"12/02/2023,GRAB RIDES,15.2,,",
		"13/02/2023,PAYMENT - THANK YOU,,500,",
		"14/02/2023,SHOPEE,3,,",
	}, res.Lines)
	assert.Empty(t, res.Warnings)
}

func TestSignedRemap_BadAmount(t *testing.T) {
	n := &SignedRemap{}
	res, err := n.Normalize([]string{
		`"12/02/2023","GRAB RIDES SINGAPORE SG","-15.20","",""`,
		`"13/02/2023","PENDING","n/a","",""`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Date,Payee,Outflow,Inflow,Memo", "12/02/2023,GRAB RIDES,15.2,,"}, res.Lines)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, model.WarnAmountFormat, res.Warnings[0].Kind)
	assert.Equal(t, 2, res.Warnings[0].Line)
}

const dbsExport = `Account Details For:,POSB Savings 123-45678-9
Statement as at:,28 Feb 2023
Available Balance:,1000.00

` + bank.DBSHeader + `
01 Feb 2023,01 Feb 2023,ICT,FAST,25.00,,Alice,rent,feb
02 Feb 2023,02 Feb 2023,POS,NETS,"1,200.00",,,,
28 Feb 2023,28 Feb 2023,INT,,,0.12,,,
31 Feb 2023,31 Feb 2023,POS,X,1.00,,,,
Total,,,
`

func TestHeaderSeek(t *testing.T) {
	n := &HeaderSeek{Header: bank.DBSHeader}
	res, err := n.Normalize(splitTestLines(dbsExport))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Date,Payee,Outflow,Inflow,Memo",
		"01/02/2023,Alice,25.00,,rent feb",
		"02/02/2023,NETS,1200.00,,",
		"28/02/2023,Interest,,0.12,",
	}, res.Lines)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, model.WarnDateFormat, res.Warnings[0].Kind)
}

func TestHeaderSeek_MissingHeader(t *testing.T) {
	n := &HeaderSeek{Header: bank.DBSHeader}
	_, err := n.Normalize([]string{"Account Details For:,x", "01 Feb 2023,foo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedInput)
}

func TestJoinNonEmpty(t *testing.T) {
	assert.Equal(t, "a b", joinNonEmpty("a", "", "b"))
	assert.Equal(t, "", joinNonEmpty("", ""))
}

func TestPlainAmount(t *testing.T) {
	assert.Equal(t, "1000.50", plainAmount(" 1,000.50 "))
	assert.Equal(t, "SGD 1,000", plainAmount("SGD 1,000"))
	assert.Equal(t, "", plainAmount(""))
}

func splitTestLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
