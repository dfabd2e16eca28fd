package testutils

import "testing"

func TestMain(m *testing.M) { RunMain(m, "testutils") }
