package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/branch-bank/internal/domain"
)

const validYAML = `
bank: First National
branches:
  - name: Main
    customers:
      - name: Alice
        id: 1
        transactions: [100, -150]
      - name: Bob
        id: 2
        transactions: ["20.5"]
  - name: Harbor
`

const validJSON = `{
  "bank": "First National",
  "branches": [
    {"name": "Main", "customers": [{"name": "Alice", "id": 1, "transactions": ["100", "-150"]}]}
  ]
}`

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	got, err := Load(writeSeed(t, "seed.yaml", validYAML))
	require.NoError(t, err)

	want := File{
		Bank: "First National",
		Branches: []Branch{
			{
				Name: "Main",
				Customers: []Customer{
					{Name: "Alice", ID: 1, Transactions: []string{"100", "-150"}},
					{Name: "Bob", ID: 2, Transactions: []string{"20.5"}},
				},
			},
			{Name: "Harbor"},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	got, err := Load(writeSeed(t, "seed.json", validJSON))
	require.NoError(t, err)
	require.Equal(t, "First National", got.Bank)
	require.Len(t, got.Branches, 1)
	require.Equal(t, []string{"100", "-150"}, got.Branches[0].Customers[0].Transactions)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name        string
		file        string
		content     string
		wantInvalid bool
	}{
		{
			name:        "MissingBankName",
			file:        "seed.yaml",
			content:     "branches:\n  - name: Main\n",
			wantInvalid: true,
		},
		{
			name:        "MissingBranchName",
			file:        "seed.yaml",
			content:     "bank: First National\nbranches:\n  - customers: []\n",
			wantInvalid: true,
		},
		{
			name:        "MissingCustomerName",
			file:        "seed.yaml",
			content:     "bank: First National\nbranches:\n  - name: Main\n    customers:\n      - id: 1\n",
			wantInvalid: true,
		},
		{
			name: "NonNumericAmount",
			file: "seed.yaml",
			content: "bank: First National\nbranches:\n  - name: Main\n    customers:\n" +
				"      - name: Alice\n        id: 1\n        transactions: [\"ten\"]\n",
			wantInvalid: true,
		},
		{
			name:        "NegativeCustomerID",
			file:        "seed.yaml",
			content:     "bank: First National\nbranches:\n  - name: Main\n    customers:\n      - name: Alice\n        id: -5\n",
			wantInvalid: true,
		},
		{
			name:    "MalformedDocument",
			file:    "seed.json",
			content: "{bad json",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeSeed(t, tc.file, tc.content))
			require.Error(t, err)

			if tc.wantInvalid {
				require.ErrorIs(t, err, ErrInvalidSeed)
			} else {
				require.NotErrorIs(t, err, ErrInvalidSeed)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApply(t *testing.T) {
	f := File{
		Bank: "First National",
		Branches: []Branch{
			{
				Name: "Main",
				Customers: []Customer{
					{Name: "Alice", ID: 1, Transactions: []string{"100", "-150"}},
					{Name: "Bob", ID: 2, Transactions: []string{"20.5"}},
					{Name: "Alice twin", ID: 1, Transactions: []string{"5"}},
				},
			},
			{Name: "Harbor"},
			{
				Name:      "Main",
				Customers: []Customer{{Name: "Carol", ID: 3, Transactions: []string{"1"}}},
			},
		},
	}

	var logs bytes.Buffer

	ctx := zerolog.New(&logs).WithContext(context.Background())
	bank := domain.NewBank(f.Bank)

	got := Apply(ctx, bank, f)

	want := Summary{
		Branches:     2,
		Customers:    2,
		Transactions: 3,
		// Duplicate Alice with her transaction, duplicate Main, and Carol with her transaction.
		Rejected: 5,
	}
	require.Equal(t, want, got)

	require.Len(t, bank.Branches(), 2)

	mainBranches := bank.FindBranchByName("Main")
	require.Len(t, mainBranches, 1)
	require.Len(t, mainBranches[0].Customers(), 2)

	alice, ok := mainBranches[0].Customer(1)
	require.True(t, ok)
	require.Equal(t, "Alice", alice.Name())
	require.Len(t, alice.Transactions(), 2)
	require.True(t, alice.Balance().Equal(decimal.Zero))

	bob, ok := mainBranches[0].Customer(2)
	require.True(t, ok)
	require.True(t, bob.Balance().Equal(decimal.RequireFromString("20.5")))

	require.Contains(t, logs.String(), "seed branch rejected")
	require.Contains(t, logs.String(), "seed customer rejected")
}

func TestApplyBadAmount(t *testing.T) {
	f := File{
		Bank: "First National",
		Branches: []Branch{
			{
				Name:      "Main",
				Customers: []Customer{{Name: "Alice", ID: 1, Transactions: []string{"ten", "10"}}},
			},
		},
	}

	bank := domain.NewBank(f.Bank)

	got := Apply(context.Background(), bank, f)
	require.Equal(t, Summary{Branches: 1, Customers: 1, Transactions: 1, Rejected: 1}, got)
}

func TestValidate(t *testing.T) {
	f := File{
		Bank:     "First National",
		Branches: []Branch{{Name: "Main", Customers: []Customer{{Name: "Alice", ID: -5}}}},
	}
	require.ErrorIs(t, Validate(f), ErrInvalidSeed)

	f.Branches[0].Customers[0].ID = 0
	require.NoError(t, Validate(f))
}
