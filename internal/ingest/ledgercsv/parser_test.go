package ledgercsv_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/ledgerlens/internal/ingest/ledgercsv"
	"github.com/MrJamesThe3rd/ledgerlens/internal/ledger"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_Categorized(t *testing.T) {
	csv := `Export generated 2023-02-01;
Owner;JOHN DOE

Date;Description;Account;Category;Amount
2023-01-10;SUPERMARKET CENTRAL;Checking;Groceries;-50,00
2023-01-11;SALARY JANUARY;Checking;Income;2.500,00
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, date(2023, 1, 10), recs[0].Date)
	assert.Equal(t, "SUPERMARKET CENTRAL", recs[0].Description)
	assert.Equal(t, "Checking", recs[0].Account)
	assert.Equal(t, "Groceries", recs[0].Category)
	assert.Equal(t, int64(-5000), recs[0].AmountCents)
	assert.Equal(t, ledger.TypePurchase, recs[0].TypeID)

	assert.Equal(t, date(2023, 1, 11), recs[1].Date)
	assert.Equal(t, int64(250000), recs[1].AmountCents)
	assert.Equal(t, ledger.TypeDeposit, recs[1].TypeID)
}

func TestParser_Statement(t *testing.T) {
	csv := `Date;Description;Account;Debit;Credit
2023-03-05;COFFEE SHOP;Card;4,50;
2023-03-06;REFUND STORE;Card;;12,00
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, int64(-450), recs[0].AmountCents)
	assert.Equal(t, ledger.TypePurchase, recs[0].TypeID)
	assert.Empty(t, recs[0].Category)

	assert.Equal(t, int64(1200), recs[1].AmountCents)
	assert.Equal(t, ledger.TypeDeposit, recs[1].TypeID)
}

func TestParser_Simple(t *testing.T) {
	csv := `Date;Description;Amount
10-01-2023;TAXI RIDE;-15,00
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, date(2023, 1, 10), recs[0].Date)
	assert.Empty(t, recs[0].Account)
	assert.Empty(t, recs[0].Category)
	assert.Equal(t, int64(-1500), recs[0].AmountCents)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Date;Description;Amount\n2023-01-10;CAFÉ SÃO JOÃO;-10,00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := ledgercsv.NewParser()
	recs, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, "CAFÉ SÃO JOÃO", recs[0].Description)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random;MetaData
Amount;Description;Date;Ignored
-10,00;TEST_ORDER;2023-01-10;XXX
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, "TEST_ORDER", recs[0].Description)
	assert.Equal(t, int64(-1000), recs[0].AmountCents)
}

func TestParser_EmptyFile(t *testing.T) {
	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching ledger export layout")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Date;Description;Amount`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Date;Description;Amount
2023-01-10;;-10,00
`

	p := ledgercsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestParser_PlainDecimalFormat(t *testing.T) {
	csv := `Date;Description;Amount
2023-01-10;WIRE TRANSFER;-1234.56
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, int64(-123456), recs[0].AmountCents)
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Date;Description;Amount
2023-01-10;BIG TRANSFER;-1.234.567,89
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	assert.Equal(t, int64(-123456789), recs[0].AmountCents)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Date;Description;Amount
2023-01-10;TEST;-10,00
Totals;;;;
`

	p := ledgercsv.NewParser()
	recs, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, recs, 1)
}
