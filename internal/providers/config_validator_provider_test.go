package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCnfValidator_ValidConfig(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	assert.NoError(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsBadLogLevel(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Logger.Level = "loud"
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsMissingHost(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.WebServer.Host = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsZeroHorizon(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Birthday.HorizonDays = 0
	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RejectsMissingStorageDir(t *testing.T) {
	conf := validTestConfig(t.TempDir())
	conf.Storage.Dir = ""
	assert.Error(t, NewCnfValidator(conf).Validate())
}
