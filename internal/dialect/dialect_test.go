package dialect

import "testing"

func TestDetect_JavaScript(t *testing.T) {
	src := []byte("function add(a, b) {\n  const sum = a + b;\n  console.log(`sum ${sum}`);\n  return sum;\n}\n")
	c := Detect(src)
	if c.Kind != JavaScript {
		t.Fatalf("Detect = %v (confidence %.2f), want javascript", c.Kind, c.Confidence)
	}
}

func TestDetect_Java(t *testing.T) {
	src := []byte("public class Main {\n  public static void main(String[] args) {\n    int x = 5;\n    System.out.println(x);\n  }\n}\n")
	c := Detect(src)
	if c.Kind != Java {
		t.Fatalf("Detect = %v (confidence %.2f), want java", c.Kind, c.Confidence)
	}
}

func TestDetect_Empty(t *testing.T) {
	if c := Detect(nil); c.Kind != Unknown {
		t.Fatalf("Detect(nil) = %v, want unknown", c.Kind)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"js", JavaScript, false},
		{"javascript", JavaScript, false},
		{"java", Java, false},
		{"auto", Unknown, false},
		{"", Unknown, false},
		{"python", Unknown, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromExtension(t *testing.T) {
	if FromExtension(".js") != JavaScript || FromExtension(".java") != Java || FromExtension(".py") != Unknown {
		t.Fatal("extension mapping wrong")
	}
}
