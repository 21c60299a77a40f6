package translation

import (
	"context"
	"errors"
	"fmt"

	"games-backend/application/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
)

// TranslateAPI is the subset of the Amazon Translate client in use
type TranslateAPI interface {
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

var _ TranslateAPI = (*translate.Client)(nil)

// AWSTranslator translates text with Amazon Translate
type AWSTranslator struct {
	client TranslateAPI
}

// NewAWSTranslator creates a new Amazon Translate backed translator
func NewAWSTranslator(client TranslateAPI) *AWSTranslator {
	return &AWSTranslator{client: client}
}

var _ ports.Translator = (*AWSTranslator)(nil)

// TranslateText translates one string
func (t *AWSTranslator) TranslateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLanguage),
		TargetLanguageCode: aws.String(targetLanguage),
	})
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}
	if out.TranslatedText == nil {
		return "", errors.New("translate text: empty response")
	}

	return aws.ToString(out.TranslatedText), nil
}
