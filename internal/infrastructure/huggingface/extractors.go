package huggingface

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"resty.dev/v3"

	"modelhub-server/internal/domain/catalog"
	"modelhub-server/internal/infrastructure/metrics"
)

// citationPattern pulls the first bibtex block out of a model card.
var citationPattern = regexp.MustCompile("(?s)```(?:bibtex)?\\s*(@.*?)\\s*```")

func failedExtraction[T any](name string, def T, err error) catalog.Fragment[T] {
	metrics.ExtractorFailuresTotal.WithLabelValues(name).Inc()
	return catalog.FailedFragment(def, err)
}

// FetchPapers scrapes the model's papers page for linked research papers.
// Empty default: no papers.
func (c *Client) FetchPapers(ctx context.Context, id string) catalog.Fragment[[]catalog.Paper] {
	resp, err := c.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(c.endpoint("/" + id + "/papers"))
	if err != nil {
		return failedExtraction[[]catalog.Paper]("papers", nil, err)
	}
	defer resp.RawResponse.Body.Close()
	if resp.IsError() {
		return failedExtraction[[]catalog.Paper]("papers", nil, statusError("papers", resp))
	}

	doc, err := html.Parse(resp.RawResponse.Body)
	if err != nil {
		return failedExtraction[[]catalog.Paper]("papers", nil, err)
	}
	return catalog.OkFragment(collectPaperLinks(doc))
}

// collectPaperLinks walks the parsed page and picks anchors carrying the
// paper-link class.
func collectPaperLinks(doc *html.Node) []catalog.Paper {
	var papers []catalog.Paper
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasClass(n, "paper-link") {
			papers = append(papers, catalog.Paper{
				Title: strings.TrimSpace(nodeText(n)),
				URL:   attrValue(n, "href"),
			})
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return papers
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attrValue(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

// FetchSpaces lists hosted spaces built on the model. Empty default: none.
func (c *Client) FetchSpaces(ctx context.Context, id string) catalog.Fragment[[]map[string]any] {
	var spaces []map[string]any
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("limit", "100").
		SetResult(&spaces).
		Get(c.endpoint("/api/models/" + id + "/spaces"))
	if err != nil {
		return failedExtraction[[]map[string]any]("spaces", nil, err)
	}
	if resp.IsError() {
		return failedExtraction[[]map[string]any]("spaces", nil, statusError("spaces", resp))
	}
	return catalog.OkFragment(spaces)
}

type treeResponse struct {
	Adapters      []string `json:"adapters"`
	Finetunes     []string `json:"finetunes"`
	Merges        []string `json:"merges"`
	Quantizations []string `json:"quantizations"`
}

// FetchTree loads the derivation tree. Empty default: no tree.
func (c *Client) FetchTree(ctx context.Context, id string) catalog.Fragment[*catalog.DependencyTree] {
	var tree treeResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&tree).
		Get(c.endpoint("/api/models/" + id + "/tree"))
	if err != nil {
		return failedExtraction[*catalog.DependencyTree]("tree", nil, err)
	}
	if resp.IsError() {
		return failedExtraction[*catalog.DependencyTree]("tree", nil, statusError("tree", resp))
	}
	return catalog.OkFragment(&catalog.DependencyTree{
		Adapters:      tree.Adapters,
		Finetunes:     tree.Finetunes,
		Merges:        tree.Merges,
		Quantizations: tree.Quantizations,
	})
}

type specsResponse struct {
	ModelSize          string   `json:"model_size"`
	TensorType         string   `json:"tensor_type"`
	Parameters         *int64   `json:"parameters"`
	Architecture       string   `json:"architecture"`
	License            string   `json:"license"`
	Dataset            string   `json:"dataset"`
	TrainingData       string   `json:"training_data"`
	InferenceProviders []string `json:"inference_providers"`
	Safetensors        bool     `json:"safetensors"`
}

// FetchTechnicalDetails loads the specs block. Empty default: no details.
func (c *Client) FetchTechnicalDetails(ctx context.Context, id string) catalog.Fragment[*catalog.TechnicalDetails] {
	var specs specsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&specs).
		Get(c.endpoint("/api/models/" + id + "/specs"))
	if err != nil {
		return failedExtraction[*catalog.TechnicalDetails]("technical_details", nil, err)
	}
	if resp.IsError() {
		return failedExtraction[*catalog.TechnicalDetails]("technical_details", nil, statusError("technical_details", resp))
	}
	return catalog.OkFragment(&catalog.TechnicalDetails{
		ModelSize:          specs.ModelSize,
		TensorType:         specs.TensorType,
		Parameters:         specs.Parameters,
		Architecture:       specs.Architecture,
		License:            specs.License,
		DatasetUsed:        specs.Dataset,
		TrainingData:       specs.TrainingData,
		InferenceProviders: specs.InferenceProviders,
		Safetensors:        specs.Safetensors,
	})
}

// FetchCitation pulls the first bibtex block from the raw model card.
// Empty default: no citation; a card without a bibtex block is a success.
func (c *Client) FetchCitation(ctx context.Context, id string) catalog.Fragment[*string] {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.endpoint("/" + id + "/raw/main/README.md"))
	if err != nil {
		return failedExtraction[*string]("citation", nil, err)
	}
	if resp.IsError() {
		return failedExtraction[*string]("citation", nil, statusError("citation", resp))
	}
	match := citationPattern.FindStringSubmatch(resp.String())
	if match == nil {
		return catalog.OkFragment[*string](nil)
	}
	citation := strings.TrimSpace(match[1])
	return catalog.OkFragment(&citation)
}

// FetchDownloads loads download statistics. Empty default: zero downloads.
func (c *Client) FetchDownloads(ctx context.Context, id string) catalog.Fragment[catalog.DownloadStats] {
	var stats catalog.DownloadStats
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&stats).
		Get(c.endpoint("/api/models/" + id + "/downloads"))
	if err != nil {
		return failedExtraction("downloads", catalog.DownloadStats{}, err)
	}
	if resp.IsError() {
		return failedExtraction("downloads", catalog.DownloadStats{}, statusError("downloads", resp))
	}
	return catalog.OkFragment(stats)
}

func statusError(extractor string, resp *resty.Response) error {
	return fmt.Errorf("%s request returned status %d", extractor, resp.StatusCode())
}
