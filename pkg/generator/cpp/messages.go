package cpp

import (
	"fmt"
	"strings"

	"github.com/blimu-dev/lspgen/pkg/config"
	"github.com/blimu-dev/lspgen/pkg/model"
	"github.com/blimu-dev/lspgen/pkg/utils"
)

// nullType is the payload type of a message without parameters or result
const nullType = "std::nullptr_t"

// MethodToName derives a symbol name from a wire method string: the method is
// split on '/', a protocol-reserved first segment is dropped, and every
// remaining segment is concatenated with its first character upper-cased.
func MethodToName(method string, prefixes []string) string {
	segments := strings.Split(method, "/")
	for _, prefix := range prefixes {
		if segments[0] == prefix {
			segments = segments[1:]
			break
		}
	}

	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(utils.UpperFirst(segment))
	}
	return b.String()
}

// writeNotifications emits a named wire-method constant and a message-type
// declaration for every notification, in input order
func writeNotifications(m *model.Model, target config.Target) string {
	var b strings.Builder
	for _, n := range m.Notifications {
		name := MethodToName(n.Method, target.MethodPrefixes)
		params := n.Params
		if params == "" {
			params = nullType
		}
		b.WriteString("\n")
		b.WriteString(formatDoc(n.Documentation, ""))
		fmt.Fprintf(&b, "inline constexpr char %sName[] = \"%s\";\n", name, n.Method)
		fmt.Fprintf(&b, "struct %sNotification : public NotificationMessage<%sName, %s>\n{};\n", name, name, params)
	}
	return b.String()
}

// writeRequests emits a named wire-method constant and a message-type
// declaration for every request, in input order. Requests are additionally
// parameterized by their result type and the fixed error-payload type.
func writeRequests(m *model.Model, target config.Target) string {
	var b strings.Builder
	for _, r := range m.Requests {
		name := MethodToName(r.Method, target.MethodPrefixes)
		params := r.Params
		if params == "" {
			params = nullType
		}
		result := r.Result
		if result == "" {
			result = nullType
		}
		b.WriteString("\n")
		b.WriteString(formatDoc(r.Documentation, ""))
		fmt.Fprintf(&b, "inline constexpr char %sName[] = \"%s\";\n", name, r.Method)
		fmt.Fprintf(&b, "struct %sRequest : public RequestMessage<%sName, %s, %s, %s>\n{};\n",
			name, name, params, result, target.ErrorType)
	}
	return b.String()
}
