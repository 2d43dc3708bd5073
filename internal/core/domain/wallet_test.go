package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewWalletAddress_PerNetworkValidation(t *testing.T) {
	cases := []struct {
		name    string
		address string
		network string
		ok      bool
	}{
		{"ethereum valid", "0x52908400098527886E0F7030069857D2E4169EE7", "ethereum", true},
		{"ethereum bad hex", "0xZZ908400098527886E0F7030069857D2E4169EE7", "ethereum", false},
		{"ethereum too short", "0x1234", "ethereum", false},
		{"bitcoin legacy", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", "bitcoin", true},
		{"bitcoin bech32", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", "bitcoin", true},
		{"bitcoin invalid", "0x52908400098527886E0F7030069857D2E4169EE7", "bitcoin", false},
		{"bsc valid", "0x52908400098527886E0F7030069857D2E4169EE7", "bsc", true},
		{"unknown network", "0x52908400098527886E0F7030069857D2E4169EE7", "dogecoin", false},
		{"empty address", "", "ethereum", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWalletAddress(tc.address, tc.network)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidWallet) {
				t.Fatalf("expected ErrInvalidWallet, got %v", err)
			}
		})
	}
}

func TestNewWalletAddress_DefaultsToEthereum(t *testing.T) {
	w, err := NewWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7", "")
	if err != nil {
		t.Fatalf("NewWalletAddress: %v", err)
	}
	if w.Network != NetworkEthereum {
		t.Fatalf("expected ethereum default, got %s", w.Network)
	}
}

func TestNewWalletAddress_TrimsWhitespace(t *testing.T) {
	w, err := NewWalletAddress("  0x52908400098527886E0F7030069857D2E4169EE7  ", "ethereum")
	if err != nil {
		t.Fatalf("NewWalletAddress: %v", err)
	}
	if strings.ContainsAny(w.Address, " \t") {
		t.Fatalf("expected trimmed address, got %q", w.Address)
	}
}

func TestWalletAddress_Short(t *testing.T) {
	w, err := NewWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7", "ethereum")
	if err != nil {
		t.Fatalf("NewWalletAddress: %v", err)
	}
	short := w.Short()
	if !strings.HasPrefix(short, "0x5290") || !strings.Contains(short, "...") {
		t.Fatalf("unexpected short form %q", short)
	}
	if len(short) >= len(w.Address) {
		t.Fatalf("short form must truncate, got %q", short)
	}
}

func TestWalletAddress_ExplorerURL(t *testing.T) {
	w, err := NewWalletAddress("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", "bitcoin")
	if err != nil {
		t.Fatalf("NewWalletAddress: %v", err)
	}
	url := w.ExplorerURL()
	if !strings.HasPrefix(url, "https://blockstream.info/address/") || !strings.HasSuffix(url, w.Address) {
		t.Fatalf("unexpected explorer url %q", url)
	}
}

func TestWalletAddress_Equals(t *testing.T) {
	a, _ := NewWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7", "ethereum")
	b, _ := NewWalletAddress("0x52908400098527886E0F7030069857D2E4169EE7", "bsc")
	if a.Equals(b) {
		t.Fatalf("same address on different networks must not be equal")
	}
}
