//go:build integration
// +build integration

package routes_test

import (
	"testing"

	"volunteer-scheduler-backend/internal/testutils"
)

func TestMain(m *testing.M) { testutils.RunMain(m, "routes") }
