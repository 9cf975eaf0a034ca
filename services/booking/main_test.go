package booking

import (
	"os"
	"testing"

	"salonbook/utils"
)

func TestMain(m *testing.M) {
	utils.InitializeLogger()
	os.Exit(m.Run())
}
