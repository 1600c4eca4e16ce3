package config

import "testing"

// TestValidateAPIAddress tests API address validation for client connections
func TestValidateAPIAddress(t *testing.T) {
	origAddr := Global.APIAddr
	defer func() { Global.APIAddr = origAddr }()

	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{
			name:    "valid loopback address",
			addr:    "127.0.0.1:8090",
			wantErr: false,
		},
		{
			name:    "valid specific IP",
			addr:    "192.168.1.50:8090",
			wantErr: false,
		},
		{
			name:    "unroutable wildcard address",
			addr:    "0.0.0.0:8090",
			wantErr: true,
		},
		{
			name:    "missing port",
			addr:    "127.0.0.1",
			wantErr: true,
		},
		{
			name:    "port zero",
			addr:    "127.0.0.1:0",
			wantErr: true,
		},
		{
			name:    "malformed address",
			addr:    "not-an-address:port",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.APIAddr = tt.addr
			err := ValidateAPIAddress()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAPIAddress() for %q error = %v, wantErr %v", tt.addr, err, tt.wantErr)
			}
		})
	}
}

// TestValidateOutputFormat tests output format validation
func TestValidateOutputFormat(t *testing.T) {
	origOutput := Global.Output
	defer func() { Global.Output = origOutput }()

	for _, format := range []string{"table", "json"} {
		Global.Output = format
		if err := ValidateOutputFormat(); err != nil {
			t.Errorf("ValidateOutputFormat() rejected valid format %q: %v", format, err)
		}
	}

	for _, format := range []string{"", "yaml", "TABLE", "csv"} {
		Global.Output = format
		if err := ValidateOutputFormat(); err == nil {
			t.Errorf("ValidateOutputFormat() accepted invalid format %q", format)
		}
	}
}

// TestValidateExportFormat tests export format validation
func TestValidateExportFormat(t *testing.T) {
	origFormat := Export.Format
	defer func() { Export.Format = origFormat }()

	for _, format := range []string{"dpo", "jsonl"} {
		Export.Format = format
		if err := ValidateExportFormat(); err != nil {
			t.Errorf("ValidateExportFormat() rejected valid format %q: %v", format, err)
		}
	}

	for _, format := range []string{"", "csv", "DPO"} {
		Export.Format = format
		if err := ValidateExportFormat(); err == nil {
			t.Errorf("ValidateExportFormat() accepted invalid format %q", format)
		}
	}
}
