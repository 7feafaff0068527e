package cmd

import "testing"

func TestParseDemoArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    demoOptions
		wantErr bool
	}{
		{"empty", nil, demoOptions{}, false},
		{"rows space form", []string{"--rows", "50"}, demoOptions{rows: 50}, false},
		{"rows equals form", []string{"--rows=50"}, demoOptions{rows: 50}, false},
		{"theme space form", []string{"--theme", "night.yaml"}, demoOptions{themeFile: "night.yaml"}, false},
		{"theme equals form", []string{"--theme=night.yaml"}, demoOptions{themeFile: "night.yaml"}, false},
		{"horizontal", []string{"--horizontal"}, demoOptions{horizontal: true}, false},
		{"light", []string{"--light"}, demoOptions{light: true}, false},
		{"combined", []string{"--rows", "10", "--horizontal", "--light"}, demoOptions{rows: 10, horizontal: true, light: true}, false},

		{"rows missing value", []string{"--rows"}, demoOptions{}, true},
		{"rows not a number", []string{"--rows", "abc"}, demoOptions{}, true},
		{"rows zero", []string{"--rows=0"}, demoOptions{}, true},
		{"rows negative", []string{"--rows", "-3"}, demoOptions{}, true},
		{"theme missing value", []string{"--theme"}, demoOptions{}, true},
		{"unknown flag", []string{"--bogus"}, demoOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDemoArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDemoArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseDemoArgs(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
