package proguard

import (
	"fmt"
	"strings"
)

// primitiveDescriptors maps the nine Java primitive type names to their
// single-letter JVM codes.
var primitiveDescriptors = map[string]string{
	"void":    "V",
	"boolean": "Z",
	"byte":    "B",
	"char":    "C",
	"short":   "S",
	"int":     "I",
	"float":   "F",
	"long":    "J",
	"double":  "D",
}

// TypeDescriptor converts a Java source-level type name, optionally suffixed
// with "[]" array markers, into its JVM descriptor. Object types are
// translated through the class map; names absent from the map pass through
// with dots replaced by slashes, since mapping files routinely reference
// classes outside their own scope (JDK types, libraries).
func TypeDescriptor(javaType string, classes ClassMap) string {
	arrayDepth := strings.Count(javaType, "[]")
	javaType = strings.ReplaceAll(javaType, "[]", "")

	var desc string
	if code, ok := primitiveDescriptors[javaType]; ok {
		desc = code
	} else {
		internal := strings.ReplaceAll(javaType, ".", "/")
		if obfuscated, ok := classes[internal]; ok {
			internal = obfuscated
		}
		desc = "L" + internal + ";"
	}

	return strings.Repeat("[", arrayDepth) + desc
}

// MethodDescriptor builds a JVM method descriptor "(params)return" from a
// source-level return type and a comma-separated parameter list. Each
// parameter entry contributes only its first whitespace-separated token;
// any parameter name after it is dropped.
func MethodDescriptor(returnType, params string, classes ClassMap) string {
	var b strings.Builder
	b.WriteByte('(')

	if params != "" {
		for _, param := range strings.Split(params, ",") {
			fields := strings.Fields(param)
			if len(fields) == 0 {
				continue
			}
			b.WriteString(TypeDescriptor(fields[0], classes))
		}
	}

	b.WriteByte(')')
	b.WriteString(TypeDescriptor(returnType, classes))
	return b.String()
}

// ParameterDescriptors splits a JVM method descriptor into its individual
// parameter descriptors, e.g. "(I[Ljava/lang/String;J)V" yields
// ["I", "[Ljava/lang/String;", "J"].
func ParameterDescriptors(descriptor string) ([]string, error) {
	if len(descriptor) == 0 || descriptor[0] != '(' {
		return nil, fmt.Errorf("method descriptor %q does not start with '('", descriptor)
	}
	end := strings.IndexByte(descriptor, ')')
	if end < 0 {
		return nil, fmt.Errorf("method descriptor %q has no closing ')'", descriptor)
	}
	params := descriptor[1:end]

	var types []string
	for i := 0; i < len(params); {
		start := i
		for i < len(params) && params[i] == '[' {
			i++
		}
		if i == len(params) {
			return nil, fmt.Errorf("truncated array type in descriptor %q", descriptor)
		}

		switch params[i] {
		case 'Z', 'B', 'C', 'S', 'I', 'F', 'J', 'D':
			i++
		case 'L':
			semi := strings.IndexByte(params[i:], ';')
			if semi < 0 {
				return nil, fmt.Errorf("unterminated object type in descriptor %q", descriptor)
			}
			i += semi + 1
		default:
			return nil, fmt.Errorf("unexpected character %q in descriptor %q", params[i], descriptor)
		}

		types = append(types, params[start:i])
	}
	return types, nil
}
