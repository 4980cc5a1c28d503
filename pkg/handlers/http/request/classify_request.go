package request

import (
	"github.com/NeuralTrust/ContentGuard/pkg/domain/classification"
	domain "github.com/NeuralTrust/ContentGuard/pkg/domain/errors"
	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Text string `json:"text"` // @required
}

// ClassifyBatchRequest is the body of POST /classify/batch.
type ClassifyBatchRequest struct {
	Texts []string `json:"texts"` // @required
}

// ParseClassifyRequest rejects bodies that are not JSON. A missing or
// non-string text decodes to an empty one so the pipeline reports it.
func ParseClassifyRequest(body []byte) (*ClassifyRequest, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, domain.ErrInvalidRequestBody
	}
	return &ClassifyRequest{Text: stringField(v.Get("text"))}, nil
}

// ParseClassifyBatchRequest rejects bodies that are not JSON. Non-string
// items decode to empty texts.
func ParseClassifyBatchRequest(body []byte) (*ClassifyBatchRequest, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, domain.ErrInvalidRequestBody
	}
	items := v.Get("texts")
	if items == nil || items.Type() != fastjson.TypeArray {
		return &ClassifyBatchRequest{}, nil
	}
	values, _ := items.Array()
	texts := make([]string, len(values))
	for i, item := range values {
		texts[i] = stringField(item)
	}
	return &ClassifyBatchRequest{Texts: texts}, nil
}

func stringField(v *fastjson.Value) string {
	if v == nil || v.Type() != fastjson.TypeString {
		return ""
	}
	return string(v.GetStringBytes())
}

func (r *ClassifyRequest) ToDomain() classification.Request {
	return classification.Request{Text: r.Text}
}

func (r *ClassifyBatchRequest) ToDomain() classification.BatchRequest {
	return classification.BatchRequest{Texts: r.Texts}
}
