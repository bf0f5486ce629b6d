package chat

// Builder defaults.
const (
	defaultTemperature = 1.0
	defaultTopP        = 1.0
	defaultN           = 1
	defaultStream      = true
	defaultMaxTokens   = 1024
	defaultUser        = "cordyceps"
)

// Payload is the complete request description for one completion call.
// Field names and types follow the endpoint's JSON contract verbatim.
// Construct it through Builder; a payload is immutable once built and is
// owned by the call that sends it.
type Payload struct {
	Model            Model              `json:"model"`
	Messages         []Message          `json:"messages"`
	Temperature      float64            `json:"temperature"`
	TopP             float64            `json:"top_p"`
	N                int                `json:"n"`
	Stream           bool               `json:"stream"`
	Stop             *string            `json:"stop"`
	MaxTokens        int                `json:"max_tokens"`
	PresencePenalty  float64            `json:"presence_penalty"`
	FrequencyPenalty float64            `json:"frequency_penalty"`
	LogitBias        map[string]float64 `json:"logit_bias"`
	User             string             `json:"user"`
}

// Builder accumulates payload configuration and validates at Build time.
// Setters return the builder for chaining and stage values verbatim — range
// checking of sampling parameters is the remote service's responsibility.
type Builder struct {
	model            Model
	messages         []Message
	temperature      float64
	topP             float64
	n                int
	stream           bool
	stop             *string
	maxTokens        int
	presencePenalty  float64
	frequencyPenalty float64
	logitBias        map[string]float64
	user             string
}

// NewBuilder returns a builder preloaded with the documented defaults:
// model gpt-3.5-turbo, temperature 1.0, top_p 1.0, n 1, stream true,
// no stop sequence, max_tokens 1024, both penalties 0, empty logit bias.
func NewBuilder() *Builder {
	return &Builder{
		model:       ModelGPT35Turbo,
		temperature: defaultTemperature,
		topP:        defaultTopP,
		n:           defaultN,
		stream:      defaultStream,
		maxTokens:   defaultMaxTokens,
		logitBias:   map[string]float64{},
		user:        defaultUser,
	}
}

// Build validates the staged configuration and produces the payload.
// The only invariant checked here is that at least one message was added;
// it fails with ErrNoMessages otherwise. Staged slices and maps are copied
// so the payload stays immutable if the builder is reused.
func (b *Builder) Build() (Payload, error) {
	if len(b.messages) == 0 {
		return Payload{}, ErrNoMessages
	}

	messages := make([]Message, len(b.messages))
	copy(messages, b.messages)

	logitBias := make(map[string]float64, len(b.logitBias))
	for k, v := range b.logitBias {
		logitBias[k] = v
	}

	return Payload{
		Model:            b.model,
		Messages:         messages,
		Temperature:      b.temperature,
		TopP:             b.topP,
		N:                b.n,
		Stream:           b.stream,
		Stop:             b.stop,
		MaxTokens:        b.maxTokens,
		PresencePenalty:  b.presencePenalty,
		FrequencyPenalty: b.frequencyPenalty,
		LogitBias:        logitBias,
		User:             b.user,
	}, nil
}

// Model sets the model variant to invoke.
func (b *Builder) Model(model Model) *Builder {
	b.model = model
	return b
}

// Messages appends all given messages preserving their order.
func (b *Builder) Messages(messages []Message) *Builder {
	b.messages = append(b.messages, messages...)
	return b
}

// Message appends a single message.
func (b *Builder) Message(message Message) *Builder {
	b.messages = append(b.messages, message)
	return b
}

// UserMessage appends a user-role message with the given content.
func (b *Builder) UserMessage(content string) *Builder {
	return b.Message(NewMessage(RoleUser, content))
}

// SystemMessage appends a system-role message with the given content.
func (b *Builder) SystemMessage(content string) *Builder {
	return b.Message(NewMessage(RoleSystem, content))
}

// AssistantMessage appends an assistant-role message with the given content.
func (b *Builder) AssistantMessage(content string) *Builder {
	return b.Message(NewMessage(RoleAssistant, content))
}

// Temperature sets the sampling temperature.
func (b *Builder) Temperature(temperature float64) *Builder {
	b.temperature = temperature
	return b
}

// TopP sets the nucleus sampling threshold.
func (b *Builder) TopP(topP float64) *Builder {
	b.topP = topP
	return b
}

// N sets the number of candidate completions.
func (b *Builder) N(n int) *Builder {
	b.n = n
	return b
}

// Stream toggles streaming delivery of the response.
func (b *Builder) Stream(stream bool) *Builder {
	b.stream = stream
	return b
}

// Stop sets the stop sequence.
func (b *Builder) Stop(stop string) *Builder {
	b.stop = &stop
	return b
}

// MaxTokens limits the response length.
func (b *Builder) MaxTokens(maxTokens int) *Builder {
	b.maxTokens = maxTokens
	return b
}

// PresencePenalty sets the presence penalty.
func (b *Builder) PresencePenalty(penalty float64) *Builder {
	b.presencePenalty = penalty
	return b
}

// FrequencyPenalty sets the frequency penalty.
func (b *Builder) FrequencyPenalty(penalty float64) *Builder {
	b.frequencyPenalty = penalty
	return b
}

// LogitBias sets the per-token logit bias map.
func (b *Builder) LogitBias(bias map[string]float64) *Builder {
	b.logitBias = bias
	return b
}

// User sets the caller identifier reported to the service.
func (b *Builder) User(user string) *Builder {
	b.user = user
	return b
}
