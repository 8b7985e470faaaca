package path_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPathEvaluator(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Path evaluator suite")
}
