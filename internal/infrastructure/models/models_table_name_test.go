package models

import "testing"

func TestTableNames(t *testing.T) {
	if got := (SiteConfig{}).TableName(); got != "site_config" {
		t.Fatalf("unexpected SiteConfig table name: %s", got)
	}
}
