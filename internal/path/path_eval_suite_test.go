package path_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/libfyaml-go/fyaml/internal/document"
	"github.com/libfyaml-go/fyaml/internal/path"
)

func buildDoc(src string) *document.Document {
	b := document.NewBuilder(strings.NewReader(src))
	doc, err := b.BuildDocument()
	Expect(err).NotTo(HaveOccurred())
	Expect(doc).NotTo(BeNil())
	Expect(document.Resolve(doc)).To(Succeed())
	return doc
}

func query(doc *document.Document, expr string) path.Result {
	r, err := path.Query(doc, expr)
	Expect(err).NotTo(HaveOccurred())
	return r
}

var _ = Describe("path evaluator", func() {
	var doc *document.Document

	BeforeEach(func() {
		doc = buildDoc("" +
			"id: 42\n" +
			"name: widget\n" +
			"tags: [red, green, blue]\n" +
			"owner:\n" +
			"  name: alice\n" +
			"  roles: [admin, editor]\n" +
			"history: []\n")
	})

	Describe("chain navigation", func() {
		It("threads map keys left to right", func() {
			r := query(doc, "/owner/name")
			Expect(r.Kind).To(Equal(path.ResultNode))
			Expect(r.Node.Value).To(Equal("alice"))
		})

		It("returns to the immediate parent container", func() {
			r := query(doc, "/owner/name/..")
			Expect(r.Kind).To(Equal(path.ResultNode))
			Expect(r.Node.Kind).To(Equal(document.MappingNode))
		})

		It("resolves this to the current node unchanged", func() {
			r := query(doc, "/owner/.")
			Expect(r.Kind).To(Equal(path.ResultNode))
			Expect(r.Node.Kind).To(Equal(document.MappingNode))
		})
	})

	Describe("sequence indexing", func() {
		It("clamps a slice end past the sequence length", func() {
			r := query(doc, "/tags/[1:100]")
			Expect(r.Kind).To(Equal(path.ResultList))
			Expect(r.List).To(HaveLen(2))
			Expect(r.List[0].Node.Value).To(Equal("green"))
			Expect(r.List[1].Node.Value).To(Equal("blue"))
		})

		It("returns an empty list for a slice on an empty sequence", func() {
			r := query(doc, "/history/[0:5]")
			Expect(r.IsEmpty()).To(BeTrue())
		})

		It("supports negative indices counting from the end", func() {
			r := query(doc, "/tags/[-1]")
			Expect(r.Kind).To(Equal(path.ResultNode))
			Expect(r.Node.Value).To(Equal("blue"))
		})
	})

	Describe("every-child-recursive", func() {
		It("visits every descendant node, not just direct children", func() {
			r := query(doc, "/owner/**")
			Expect(r.Kind).To(Equal(path.ResultList))
			values := map[string]bool{}
			for _, item := range r.List {
				if item.Node.Kind == document.ScalarNode {
					values[item.Node.Value] = true
				}
			}
			Expect(values).To(HaveKey("alice"))
			Expect(values).To(HaveKey("admin"))
			Expect(values).To(HaveKey("editor"))
		})
	})

	Describe("logical combinators", func() {
		It("&& yields the right side only when the left side is non-empty", func() {
			r := query(doc, "/name && /owner/name")
			Expect(r.Node.Value).To(Equal("alice"))
		})

		It("&& short-circuits to empty when the left side is empty", func() {
			r := query(doc, "/missing && /owner/name")
			Expect(r.IsEmpty()).To(BeTrue())
		})

		It("|| falls through to the right side on an empty left side", func() {
			r := query(doc, "/missing || /name")
			Expect(r.Node.Value).To(Equal("widget"))
		})
	})

	Describe("multi concatenation", func() {
		It("evaluates every branch against the same input and concatenates", func() {
			r := query(doc, "/name,/owner/name")
			Expect(r.Kind).To(Equal(path.ResultList))
			Expect(r.List).To(HaveLen(2))
			Expect(r.List[0].Node.Value).To(Equal("widget"))
			Expect(r.List[1].Node.Value).To(Equal("alice"))
		})
	})

	Describe("filter suffixes", func() {
		It("$ keeps only scalar results", func() {
			r := query(doc, "/*$")
			Expect(r.Kind).To(Equal(path.ResultList))
			for _, item := range r.List {
				Expect(item.Node.Kind).To(Equal(document.ScalarNode))
			}
		})

		It("% keeps only collection results", func() {
			r := query(doc, "/*%")
			Expect(r.Kind).To(Equal(path.ResultList))
			for _, item := range r.List {
				Expect(item.Node.Kind).To(BeElementOf(document.SequenceNode, document.MappingNode))
			}
		})

		It("[] keeps only sequence results", func() {
			r := query(doc, "/*[]")
			Expect(r.Kind).To(Equal(path.ResultList))
			for _, item := range r.List {
				Expect(item.Node.Kind).To(Equal(document.SequenceNode))
			}
		})

		It("{} keeps only mapping results", func() {
			r := query(doc, "/*{}")
			Expect(r.Kind).To(Equal(path.ResultNode))
			Expect(r.Node.Kind).To(Equal(document.MappingNode))
		})
	})

	Describe("comparison and arithmetic", func() {
		It("compares scalar text lexicographically when not numeric", func() {
			r := query(doc, "/name == \"widget\"")
			Expect(r.Scalar).To(Equal(true))
		})

		It("evaluates arithmetic before the comparison", func() {
			doc := buildDoc("count: 9\n")
			r := query(doc, "/count == 4 + 5")
			Expect(r.Scalar).To(Equal(true))
		})
	})
})
